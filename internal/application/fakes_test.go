package application

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.LevelError)
}

// fakeUserRepo simula el repositorio de usuarios con un único usuario
// registrado en memoria
type fakeUserRepo struct {
	login    string
	password string
	profile  *domain.Profile

	storeDown       bool
	passwordsInUse  map[string]bool
	loginsExisting  map[string]bool
	changedPassword string
	updatedStatus   domain.AccountStatus
	updatedUserID   int
}

func newFakeUserRepo(login, password string) *fakeUserRepo {
	return &fakeUserRepo{
		login:    login,
		password: password,
		profile: &domain.Profile{
			UserID:          1,
			AccountStatus:   domain.AccountStatusActiva,
			FirstName:       "Ana",
			PaternalSurname: "García",
			MaternalSurname: "López",
		},
		passwordsInUse: map[string]bool{},
		loginsExisting: map[string]bool{},
	}
}

func (f *fakeUserRepo) Authenticate(login, password string) (*domain.Profile, error) {
	if f.storeDown {
		return nil, domain.ErrStoreUnavailable
	}
	if login != f.login || password != f.password {
		return nil, domain.ErrInvalidCredentials
	}
	return f.profile, nil
}

func (f *fakeUserRepo) PasswordInUse(candidate string) (bool, error) {
	if f.storeDown {
		return false, domain.ErrStoreUnavailable
	}
	return f.passwordsInUse[candidate], nil
}

func (f *fakeUserRepo) ChangePassword(login, newPassword string) error {
	if login != f.login {
		return domain.ErrNotFound
	}
	f.password = newPassword
	f.changedPassword = newPassword
	return nil
}

func (f *fakeUserRepo) UpdateAccountStatus(userID int, status domain.AccountStatus) error {
	if userID != f.profile.UserID {
		return domain.ErrNotFound
	}
	f.updatedUserID = userID
	f.updatedStatus = status
	return nil
}

func (f *fakeUserRepo) LoginExists(login string, excludeUserID int) (bool, error) {
	if f.storeDown {
		return false, domain.ErrStoreUnavailable
	}
	return f.loginsExisting[login], nil
}

// fakePersonRepo registra las llamadas de escritura sin tocar almacén
type fakePersonRepo struct {
	addCalled    bool
	updateCalled bool
	deleteCalled bool
	failWrites   bool

	lastPerson domain.PersonFields
	lastUser   domain.UserFields

	summaries []domain.PersonSummary
	detail    *domain.PersonDetail
	students  []domain.StudentOption
}

func (f *fakePersonRepo) Add(p domain.PersonFields, u domain.UserFields) (int, int, error) {
	if f.failWrites {
		return 0, 0, domain.ErrStoreUnavailable
	}
	f.addCalled = true
	f.lastPerson = p
	f.lastUser = u
	return 10, 20, nil
}

func (f *fakePersonRepo) Update(userID, personID int, p domain.PersonFields, u domain.UserFields) error {
	if f.failWrites {
		return domain.ErrStoreUnavailable
	}
	f.updateCalled = true
	f.lastPerson = p
	f.lastUser = u
	return nil
}

func (f *fakePersonRepo) Delete(userID int) (int, string, error) {
	if userID != 20 {
		return 0, "", domain.ErrNotFound
	}
	f.deleteCalled = true
	return 10, "agarcia", nil
}

func (f *fakePersonRepo) ListSummaries() ([]domain.PersonSummary, error) {
	if f.failWrites {
		return nil, domain.ErrStoreUnavailable
	}
	return f.summaries, nil
}

func (f *fakePersonRepo) GetDetail(userID int) (*domain.PersonDetail, error) {
	if f.detail == nil {
		return nil, domain.ErrNotFound
	}
	return f.detail, nil
}

func (f *fakePersonRepo) ListStudents() ([]domain.StudentOption, error) {
	return f.students, nil
}

// fakePaymentRepo guarda los cobros en memoria
type fakePaymentRepo struct {
	payments   map[int]domain.Payment
	nextID     int
	failWrites bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int]domain.Payment{}, nextID: 1}
}

func (f *fakePaymentRepo) Create(payment *domain.Payment) error {
	if f.failWrites {
		return domain.ErrStoreUnavailable
	}
	payment.PaymentID = f.nextID
	f.nextID++
	f.payments[payment.PaymentID] = *payment
	return nil
}

func (f *fakePaymentRepo) Update(payment *domain.Payment) error {
	if _, ok := f.payments[payment.PaymentID]; !ok {
		return domain.ErrNotFound
	}
	f.payments[payment.PaymentID] = *payment
	return nil
}

func (f *fakePaymentRepo) Delete(paymentID int) error {
	if _, ok := f.payments[paymentID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.payments, paymentID)
	return nil
}

func (f *fakePaymentRepo) ListByUser(userID int) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListAll() ([]domain.Payment, error) {
	out := []domain.Payment{}
	for _, p := range f.payments {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentRepo) ListTypes() ([]domain.PaymentType, error) {
	return []domain.PaymentType{{PaymentTypeID: 1, Description: "Colegiatura", Amount: 1000}}, nil
}

func (f *fakePaymentRepo) ListDiscounts() ([]domain.PaymentDiscount, error) {
	return []domain.PaymentDiscount{{DiscountID: 1, Description: "Hermanos", Percentage: 0.10}}, nil
}

// fakeAuditRepo acumula las entradas de bitácora; con fail activo todas
// las escrituras fallan, para probar que la auditoría nunca altera el
// resultado de la operación de datos
type fakeAuditRepo struct {
	accesses []domain.AccessRecord
	errors   []domain.ErrorRecord
	fail     bool
}

func (f *fakeAuditRepo) RecordAccess(rec domain.AccessRecord) error {
	if f.fail {
		return domain.ErrStoreUnavailable
	}
	f.accesses = append(f.accesses, rec)
	return nil
}

func (f *fakeAuditRepo) RecordError(rec domain.ErrorRecord) error {
	if f.fail {
		return domain.ErrStoreUnavailable
	}
	f.errors = append(f.errors, rec)
	return nil
}
