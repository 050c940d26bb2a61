package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/domain/service"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
	nextID   int
	clock    time.Time

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	activeErr error

	setActiveCalls int
	updateCalls    int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[string]*entity.Product),
		clock:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func cloneProduct(p *entity.Product) *entity.Product {
	clone := *p
	clone.Images = append([]string(nil), p.Images...)
	clone.Features = append([]string(nil), p.Features...)
	return &clone
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	product.ID = fmt.Sprintf("prod-%d", r.nextID)
	product.CreatedAt = r.clock
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("no such product %s", id)
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Product
	for _, p := range r.products {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, category entity.Category, activeOnly bool) ([]*entity.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	all, err := r.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("no such product %s", product.ID)
	}
	r.updateCalls++
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *fakeProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	if r.activeErr != nil {
		return r.activeErr
	}
	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("no such product %s", id)
	}
	r.setActiveCalls++
	p.IsActive = active
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.products, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
	getErr   error
	createErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entity.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("no such profile %s", id)
	}
	return p, nil
}

type fakeAuthClient struct {
	uidByToken map[string]string
	createErr  error
	signInErr  error
	verifyErr  error
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{uidByToken: make(map[string]string)}
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password string) (string, error) {
	if c.createErr != nil {
		return "", c.createErr
	}
	uid := "uid-" + email
	c.uidByToken["token-"+email] = uid
	return uid, nil
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	if c.verifyErr != nil {
		return "", c.verifyErr
	}
	uid, ok := c.uidByToken[idToken]
	if !ok {
		return "", fmt.Errorf("unknown token")
	}
	return uid, nil
}

func (c *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if c.signInErr != nil {
		return "", c.signInErr
	}
	token := "token-" + email
	if _, ok := c.uidByToken[token]; !ok {
		c.uidByToken[token] = "uid-" + email
	}
	return token, nil
}

func (c *fakeAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return nil
}

type fakeEvents struct {
	published []string
}

func (e *fakeEvents) Publish(event, uid string) {
	e.published = append(e.published, event+":"+uid)
}

type fakeUploader struct {
	failFor map[string]bool
	calls   []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{failFor: make(map[string]bool)}
}

func (u *fakeUploader) UploadFile(ctx context.Context, file io.Reader, contentType, filename, folder string) (*service.UploadResult, error) {
	u.calls = append(u.calls, filename)
	if u.failFor[filename] {
		return nil, fmt.Errorf("upload rejected")
	}
	return &service.UploadResult{
		URL:        "https://cdn.example.com/" + folder + "/" + filename,
		ObjectName: folder + "/" + filename,
		Size:       1024,
	}, nil
}

func (u *fakeUploader) DeleteFile(ctx context.Context, objectName string) error {
	return nil
}

type fakeContactRepo struct {
	messages  []*entity.ContactMessage
	createErr error
}

func (r *fakeContactRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, message)
	return nil
}
