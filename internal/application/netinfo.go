package application

import (
	"net"
	"os"
	"sync"
)

// fallbackIP se registra en la bitácora cuando la IP local no puede
// determinarse
const fallbackIP = "192.168.0.225"

var (
	localIPOnce sync.Once
	localIP     string
)

// LocalIP devuelve la IP local del proceso para atribución en la
// bitácora. La resolución del nombre del host se hace una sola vez y
// se cachea; cada escritura de bitácora no debe pagar un lookup.
func LocalIP() string {
	localIPOnce.Do(func() {
		localIP = detectLocalIP()
	})
	return localIP
}

func detectLocalIP() string {
	hostname, err := os.Hostname()
	if err != nil {
		return fallbackIP
	}

	addrs, err := net.LookupHost(hostname)
	if err != nil || len(addrs) == 0 {
		return fallbackIP
	}

	return addrs[0]
}
