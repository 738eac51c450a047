package impl

import (
	"context"
	"sync"

	"qkart/internal/domain/entity"
	"qkart/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-memory stand-in for the database. A transaction holds the
// store lock for its whole duration, which is stricter than row locks but gives the
// same serialisation for a single shopper.
type memoryStore struct {
	mu          sync.Mutex
	carts       map[string]*entity.Cart
	users       map[string]*entity.User
	products    map[uuid.UUID]*entity.Product
	idempotency map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		carts:       map[string]*entity.Cart{},
		users:       map[string]*entity.User{},
		products:    map[uuid.UUID]*entity.Product{},
		idempotency: map[string]bool{},
	}
}

func cloneCart(c *entity.Cart) *entity.Cart {
	cp := *c
	cp.Items = append([]entity.CartItem{}, c.Items...)

	return &cp
}

func (s *memoryStore) cartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.carts)
}

func (s *memoryStore) cart(email string) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneCart(s.carts[email])
}

// putProduct adds or reprices a catalog record.
func (s *memoryStore) putProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	s.products[p.ID] = &cp
}

// withdrawProduct deletes a catalog record.
func (s *memoryStore) withdrawProduct(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id)
}

func (s *memoryStore) user(email string) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.users[email]
}

// Execute implements repository.TransactionManager. Writes are staged and applied on success.
func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{store: s, carts: map[string]*entity.Cart{}, users: map[string]*entity.User{}, keys: map[string]bool{}}
	if err := fn(tx); err != nil {
		return err
	}

	for email, c := range tx.carts {
		s.carts[email] = c
	}
	for email, u := range tx.users {
		s.users[email] = u
	}
	for key := range tx.keys {
		s.idempotency[key] = true
	}

	return nil
}

// memoryTx stages writes made inside one transaction. The store lock is already held.
type memoryTx struct {
	store *memoryStore
	carts map[string]*entity.Cart
	users map[string]*entity.User
	keys  map[string]bool
}

func (tx *memoryTx) NewCartRepository() repository.CartRepository { return &memoryCartRepo{tx: tx} }

func (tx *memoryTx) NewUserRepository() repository.UserRepository { return &memoryUserRepo{tx: tx} }

func (tx *memoryTx) NewProductRepository() repository.ProductRepository {
	return &memoryProductRepo{tx: tx}
}

func (tx *memoryTx) NewIdempotencyRepository() repository.IdempotencyRepository {
	return &memoryIdempotencyRepo{tx: tx}
}

type memoryCartRepo struct {
	tx    *memoryTx
	store *memoryStore // set for the non-transactional repository
}

func (r *memoryCartRepo) lookup(email string) (*entity.Cart, error) {
	if staged, ok := r.tx.carts[email]; ok {
		return cloneCart(staged), nil
	}
	c, ok := r.tx.store.carts[email]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return cloneCart(c), nil
}

func (r *memoryCartRepo) FindByEmail(ctx context.Context, email string) (*entity.Cart, error) {
	if r.store != nil {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()

		c, ok := r.store.carts[email]
		if !ok {
			return nil, repository.ErrCartNotFound
		}

		return cloneCart(c), nil
	}

	return r.lookup(email)
}

func (r *memoryCartRepo) FindByEmailForUpdate(ctx context.Context, email string) (*entity.Cart, error) {
	return r.lookup(email)
}

func (r *memoryCartRepo) FindOrCreate(ctx context.Context, email, paymentOption string) (*entity.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c, ok := r.store.carts[email]; ok {
		return cloneCart(c), nil
	}

	c := &entity.Cart{ID: uuid.New(), Email: email, Items: []entity.CartItem{}, PaymentOption: paymentOption}
	r.store.carts[email] = c

	return cloneCart(c), nil
}

func (r *memoryCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.tx.carts[cart.Email] = cloneCart(cart)

	return nil
}

type memoryUserRepo struct {
	tx *memoryTx
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.tx.store.users {
		if u.ID == id {
			cp := *u

			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.FindByEmailForUpdate(ctx, email)
}

func (r *memoryUserRepo) FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error) {
	if staged, ok := r.tx.users[email]; ok {
		cp := *staged

		return &cp, nil
	}
	u, ok := r.tx.store.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u

	return &cp, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.tx.users[user.Email] = &cp

	return nil
}

type memoryIdempotencyRepo struct {
	tx *memoryTx
}

func (r *memoryIdempotencyRepo) Claim(ctx context.Context, email, key string) error {
	id := email + "/" + key
	if r.tx.store.idempotency[id] || r.tx.keys[id] {
		return repository.ErrIdempotencyKeyUsed
	}
	r.tx.keys[id] = true

	return nil
}

// memoryProductRepo reads the catalog inside a transaction.
type memoryProductRepo struct {
	tx *memoryTx
}

func (r *memoryProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.tx.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p

	return &cp, nil
}
