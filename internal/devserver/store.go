package devserver

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// user cuenta registrada en el stub.
type user struct {
	ID    string
	Name  string
	Email string
	Hash  []byte // bcrypt
}

// memStore almacenamiento en memoria del devserver. Es deliberadamente
// volátil: el stub existe para desarrollo local y tests de integración,
// no persiste nada entre ejecuciones.
type memStore struct {
	mu           sync.Mutex
	usersByEmail map[string]*user
	customers    map[string]*entity.Customer
	order        []string // ids de clientes en orden de creación
	regSeq       int
	profile      *entity.BusinessProfile
	uploads      map[string][]byte // nombre -> contenido (logos)
}

func newMemStore() *memStore {
	return &memStore{
		usersByEmail: map[string]*user{},
		customers:    map[string]*entity.Customer{},
		uploads:      map[string][]byte{},
	}
}

// addUser registra la cuenta; devuelve false si el email ya existe.
func (s *memStore) addUser(name, email string, hash []byte) (*user, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[email]; ok {
		return nil, false
	}
	u := &user{ID: uuid.New().String(), Name: name, Email: email, Hash: hash}
	s.usersByEmail[email] = u
	return u, true
}

func (s *memStore) userByEmail(email string) (*user, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.usersByEmail[email]
	return u, ok
}

// createCustomer asigna id y número de registro secuencial del lado servidor.
func (s *memStore) createCustomer(c entity.Customer) *entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regSeq++
	now := time.Now().UTC()
	c.ID = uuid.New().String()
	c.RegistrationNumber = fmt.Sprintf("CUST-%04d", s.regSeq)
	c.CreatedAt = now
	c.UpdatedAt = now
	s.customers[c.ID] = &c
	s.order = append(s.order, c.ID)
	return &c
}

func (s *memStore) listCustomers() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Customer, 0, len(s.order))
	for _, id := range s.order {
		if c, ok := s.customers[id]; ok {
			out = append(out, *c)
		}
	}
	return out
}

func (s *memStore) getCustomer(id string) (*entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, false
	}
	cp := *c
	return &cp, true
}

func (s *memStore) updateCustomer(id string, apply func(c *entity.Customer)) (*entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, false
	}
	apply(c)
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	return &cp, true
}

func (s *memStore) deleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return false
	}
	delete(s.customers, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *memStore) getProfile() (*entity.BusinessProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, false
	}
	cp := *s.profile
	return &cp, true
}

// createProfile devuelve false si ya existe: el perfil es único por cuenta.
func (s *memStore) createProfile(p entity.BusinessProfile) (*entity.BusinessProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil {
		return nil, false
	}
	now := time.Now().UTC()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.profile = &p
	cp := p
	return &cp, true
}

func (s *memStore) updateProfile(apply func(p *entity.BusinessProfile)) (*entity.BusinessProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, false
	}
	apply(s.profile)
	s.profile.UpdatedAt = time.Now().UTC()
	cp := *s.profile
	return &cp, true
}

func (s *memStore) putUpload(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[name] = data
}

func (s *memStore) getUpload(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.uploads[name]
	return data, ok
}
