// Copyright (c) 2026 Glowlab. All rights reserved.

package product_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/catalog/product"
	"github.com/glowlab/glowlab/internal/catalog/relation"
	"github.com/glowlab/glowlab/internal/platform/apperr"
)

// memRepo is an in-memory Repository for service-level tests.
type memRepo struct {
	products map[int]*product.Product
	nextID   int

	searchCalls int
	listCalls   int
}

func newMemRepo(existing ...*product.Product) *memRepo {
	repo := &memRepo{products: map[int]*product.Product{}, nextID: 1}
	for _, p := range existing {
		p.ID = repo.nextID
		repo.products[p.ID] = p
		repo.nextID++
	}
	return repo
}

func (m *memRepo) ListProducts(_ context.Context, _ product.Filter, _, _ int) ([]*product.Product, int, error) {
	m.listCalls++
	out := make([]*product.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *memRepo) SearchProducts(_ context.Context, _ string, _, _ int) ([]*product.Product, int, error) {
	m.searchCalls++
	return nil, 0, nil
}

func (m *memRepo) GetProduct(_ context.Context, id int) (*product.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, apperr.NotFound("Product")
	}
	return p, nil
}

func (m *memRepo) CreateProduct(_ context.Context, p *product.Product) error {
	p.ID = m.nextID
	p.IsNew = true
	m.products[p.ID] = p
	m.nextID++
	return nil
}

func (m *memRepo) UpdateProduct(_ context.Context, p *product.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return apperr.NotFound("Product")
	}
	m.products[p.ID] = p
	return nil
}

func (m *memRepo) DeleteProduct(_ context.Context, id int) error {
	if _, ok := m.products[id]; !ok {
		return apperr.NotFound("Product")
	}
	delete(m.products, id)
	return nil
}

func (m *memRepo) UpdateThumbnail(_ context.Context, id int, url string) error {
	p, ok := m.products[id]
	if !ok {
		return apperr.NotFound("Product")
	}
	p.ThumbnailURL = &url
	return nil
}

func (m *memRepo) SetReviewed(_ context.Context, id int, reviewed bool) error {
	p, ok := m.products[id]
	if !ok {
		return apperr.NotFound("Product")
	}
	p.IsNew = !reviewed
	return nil
}

func (m *memRepo) AssociationIDs(_ context.Context, _ int) ([]int, []int, []int, error) {
	return []int{}, []int{}, []int{}, nil
}

// memRelations backs the reconciler with per-table member sets.
type memRelations struct {
	links map[string]map[int]bool
}

func newMemRelations() *memRelations {
	return &memRelations{links: map[string]map[int]bool{}}
}

func (m *memRelations) set(join relation.JoinTable) map[int]bool {
	if m.links[join.Table] == nil {
		m.links[join.Table] = map[int]bool{}
	}
	return m.links[join.Table]
}

func (m *memRelations) Current(_ context.Context, join relation.JoinTable, _ int) ([]int, error) {
	out := []int{}
	for id := range m.set(join) {
		out = append(out, id)
	}
	return out, nil
}

func (m *memRelations) Add(_ context.Context, join relation.JoinTable, _ int, memberIDs []int) error {
	for _, id := range memberIDs {
		m.set(join)[id] = true
	}
	return nil
}

func (m *memRelations) Remove(_ context.Context, join relation.JoinTable, _ int, memberIDs []int) error {
	for _, id := range memberIDs {
		delete(m.set(join), id)
	}
	return nil
}

// routineRecorder captures AddViaRoutine calls.
type routineRecorder struct {
	routine string
	ownerID int
	members []int
}

func (r *routineRecorder) AddViaRoutine(_ context.Context, routine string, ownerID int, memberIDs []int) error {
	r.routine = routine
	r.ownerID = ownerID
	r.members = memberIDs
	return nil
}

func newService(repo *memRepo) (*product.Service, *memRelations, *routineRecorder) {
	logger := slog.New(slog.DiscardHandler)
	relations := newMemRelations()
	routines := &routineRecorder{}
	service := product.NewService(repo, relation.NewReconciler(relations, logger), routines, nil, "glowlab-cms", true, logger)
	return service, relations, routines
}

/*
TestService_CreateProduct_CategoryGuard verifies that an empty category set
is rejected unless the caller explicitly opts in.
*/
func TestService_CreateProduct_CategoryGuard(t *testing.T) {
	service, _, _ := newService(newMemRepo())

	_, err := service.CreateProduct(context.Background(), &product.CreateInput{Name: "Krem nawilżający", BrandID: 1})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNPROCESSABLE", appErr.Code)
}

func TestService_CreateProduct_AllowNoCategories(t *testing.T) {
	service, _, routines := newService(newMemRepo())

	created, err := service.CreateProduct(context.Background(), &product.CreateInput{
		Name:              "Krem nawilżający",
		BrandID:           1,
		AllowNoCategories: true,
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsNew)
	assert.Empty(t, routines.members)
}

/*
TestService_CreateProduct_Associations checks that ingredients and tags go
through the reconciler while categories are seeded via the SQL routine.
*/
func TestService_CreateProduct_Associations(t *testing.T) {
	service, relations, routines := newService(newMemRepo())

	created, err := service.CreateProduct(context.Background(), &product.CreateInput{
		Name:          "Serum z witaminą C",
		BrandID:       2,
		IngredientIDs: []int{3, 9},
		CategoryIDs:   []int{2},
		TagIDs:        []int{7},
	})

	require.NoError(t, err)
	assert.Equal(t, "catalog.add_product_categories", routines.routine)
	assert.Equal(t, created.ID, routines.ownerID)
	assert.Equal(t, []int{2}, routines.members)

	ingredients, err := relations.Current(context.Background(), relation.ProductIngredients, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 9}, ingredients)

	tags, err := relations.Current(context.Background(), relation.ProductTags, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{7}, tags)

	// Nothing may leak into the category junction outside the routine.
	categories, err := relations.Current(context.Background(), relation.ProductCategories, created.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestService_CreateProduct_Validation(t *testing.T) {
	service, _, _ := newService(newMemRepo())

	_, err := service.CreateProduct(context.Background(), &product.CreateInput{
		Name:              "   ",
		BrandID:           1,
		AllowNoCategories: true,
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

/*
TestService_CreateProduct_BrandRequired verifies that a product cannot be
created without a brand.
*/
func TestService_CreateProduct_BrandRequired(t *testing.T) {
	repo := newMemRepo()
	service, _, _ := newService(repo)

	_, err := service.CreateProduct(context.Background(), &product.CreateInput{
		Name:              "Krem bez marki",
		AllowNoCategories: true,
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, repo.products, "no row may be inserted")
}

/*
TestService_ListProducts_SearchSwitch verifies the two-character threshold
between the plain listing and full-text search.
*/
func TestService_ListProducts_SearchSwitch(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantSearch bool
	}{
		{name: "empty", query: "", wantSearch: false},
		{name: "single_rune", query: "k", wantSearch: false},
		{name: "whitespace_only", query: "   ", wantSearch: false},
		{name: "two_runes", query: "kr", wantSearch: true},
		{name: "padded", query: "  krem  ", wantSearch: true},
		{name: "two_multibyte_runes", query: "żó", wantSearch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			service, _, _ := newService(repo)

			_, _, err := service.ListProducts(context.Background(), product.Filter{Query: tt.query}, 20, 0)
			require.NoError(t, err)

			if tt.wantSearch {
				assert.Equal(t, 1, repo.searchCalls)
				assert.Equal(t, 0, repo.listCalls)
			} else {
				assert.Equal(t, 0, repo.searchCalls)
				assert.Equal(t, 1, repo.listCalls)
			}
		})
	}
}

func TestService_SyncIngredients_ReturnsDelta(t *testing.T) {
	repo := newMemRepo(&product.Product{Name: "Tonik"})
	service, relations, _ := newService(repo)

	require.NoError(t, relations.Add(context.Background(), relation.ProductIngredients, 1, []int{3, 9}))

	delta, err := service.SyncIngredients(context.Background(), 1, []int{9, 11})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{11}, delta.Added)
	assert.ElementsMatch(t, []int{3}, delta.Removed)
}

func TestService_SyncIngredients_UnknownProduct(t *testing.T) {
	service, _, _ := newService(newMemRepo())

	_, err := service.SyncIngredients(context.Background(), 404, []int{1})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestService_SetReviewed(t *testing.T) {
	t.Run("workflow_enabled", func(t *testing.T) {
		repo := newMemRepo(&product.Product{Name: "Balsam", IsNew: true})
		service, _, _ := newService(repo)

		require.NoError(t, service.SetReviewed(context.Background(), 1, true))
		assert.False(t, repo.products[1].IsNew)
	})

	t.Run("workflow_disabled", func(t *testing.T) {
		repo := newMemRepo(&product.Product{Name: "Balsam", IsNew: true})
		logger := slog.New(slog.DiscardHandler)
		service := product.NewService(repo, relation.NewReconciler(newMemRelations(), logger), &routineRecorder{}, nil, "glowlab-cms", false, logger)

		err := service.SetReviewed(context.Background(), 1, true)

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNPROCESSABLE", appErr.Code)
		assert.True(t, repo.products[1].IsNew, "flag must not change when the workflow is off")
	})
}

func TestService_UpdateProduct_Partial(t *testing.T) {
	description := "Lekki krem na dzień"
	repo := newMemRepo(&product.Product{Name: "Krem", BrandID: 4, Description: &description})
	service, _, _ := newService(repo)

	newName := "Krem SPF 30"
	note := "Dobra baza pod makijaż"
	updated, err := service.UpdateProduct(context.Background(), 1, &product.UpdateInput{
		Name:             &newName,
		TechnologistNote: &note,
	})

	require.NoError(t, err)
	assert.Equal(t, "Krem SPF 30", updated.Name)
	assert.Equal(t, 4, updated.BrandID, "unset fields stay untouched")
	require.NotNil(t, updated.Description)
	assert.Equal(t, description, *updated.Description)
	require.NotNil(t, updated.TechnologistNote)
	assert.Equal(t, note, *updated.TechnologistNote)
}

/*
TestService_UpdateProduct_BrandCannotBeCleared verifies that a partial
update cannot detach the product from its brand.
*/
func TestService_UpdateProduct_BrandCannotBeCleared(t *testing.T) {
	repo := newMemRepo(&product.Product{Name: "Krem", BrandID: 4})
	service, _, _ := newService(repo)

	zero := 0
	_, err := service.UpdateProduct(context.Background(), 1, &product.UpdateInput{BrandID: &zero})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
