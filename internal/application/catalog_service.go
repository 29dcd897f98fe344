package application

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
)

const moduleCatalogs = "Catalogos"

// CatalogService expone las lecturas de catálogo a través del registro
// cerrado; ningún identificador del llamador llega a una consulta
type CatalogService struct {
	catalogRepo domain.CatalogRepository
	audit       *auditTrail
	log         *logger.Logger
}

// NewCatalogService crea una nueva instancia del servicio de catálogos
func NewCatalogService(catalogRepo domain.CatalogRepository, auditRepo domain.AuditRepository, log *logger.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		audit:       newAuditTrail(auditRepo, log),
		log:         log,
	}
}

// Available devuelve los identificadores de catálogo registrados
func (s *CatalogService) Available(actorLogin string) []domain.CatalogID {
	s.audit.Record(actorLogin, true, "AUDITORIA APP: Acceso al modulo de Catalogos")
	return domain.CatalogIDs()
}

// List devuelve las entradas de un catálogo registrado
func (s *CatalogService) List(id domain.CatalogID) ([]domain.CatalogEntry, error) {
	ref, err := domain.CatalogByID(id)
	if err != nil {
		return nil, err
	}

	entries, err := s.catalogRepo.List(ref)
	if err != nil {
		s.log.Error(moduleCatalogs, "fallo al listar catálogo %s: %v", id, err)
		return nil, err
	}

	return entries, nil
}

// Genders devuelve el catálogo de géneros
func (s *CatalogService) Genders() ([]domain.CatalogEntry, error) {
	return s.catalogRepo.Genders()
}

// JobPositions devuelve el catálogo de puestos
func (s *CatalogService) JobPositions() ([]domain.CatalogEntry, error) {
	return s.catalogRepo.JobPositions()
}

// PersonTypes devuelve el catálogo de tipos de persona
func (s *CatalogService) PersonTypes() ([]domain.CatalogEntry, error) {
	return s.catalogRepo.PersonTypes()
}
