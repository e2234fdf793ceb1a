package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/unit"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/optional"
	"inventory-backend/internal/shared/treequery"
)

// fakeCategoryRepo implements cataloguecategory.Repository with
// overridable behaviour per test.
type fakeCategoryRepo struct {
	categories map[bson.ObjectID]*cataloguecategory.CatalogueCategory

	codeExists        bool
	hasChildren       bool
	hasCatalogueItems bool
	moveAllowed       bool
	trail             *treequery.Trail
	trailErr          error

	updated *cataloguecategory.CatalogueCategory
	deleted []bson.ObjectID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:  map[bson.ObjectID]*cataloguecategory.CatalogueCategory{},
		moveAllowed: true,
	}
}

func (f *fakeCategoryRepo) add(c *cataloguecategory.CatalogueCategory) *cataloguecategory.CatalogueCategory {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	f.categories[c.ID] = c
	return c
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *cataloguecategory.CatalogueCategory) (*cataloguecategory.CatalogueCategory, error) {
	return f.add(c), nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id bson.ObjectID) (*cataloguecategory.CatalogueCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, cataloguecategory.ErrCatalogueCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ cataloguecategory.ListFilter) ([]cataloguecategory.CatalogueCategory, error) {
	out := []cataloguecategory.CatalogueCategory{}
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *cataloguecategory.CatalogueCategory) error {
	f.updated = c
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id bson.ObjectID) error {
	f.deleted = append(f.deleted, id)
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) HasChildCategories(_ context.Context, _ bson.ObjectID) (bool, error) {
	return f.hasChildren, nil
}

func (f *fakeCategoryRepo) HasCatalogueItems(_ context.Context, _ bson.ObjectID) (bool, error) {
	return f.hasCatalogueItems, nil
}

func (f *fakeCategoryRepo) CodeExistsWithinParent(_ context.Context, _ *bson.ObjectID, _ string, _ bson.ObjectID) (bool, error) {
	return f.codeExists, nil
}

func (f *fakeCategoryRepo) Breadcrumbs(_ context.Context, _ bson.ObjectID) (*treequery.Trail, error) {
	return f.trail, f.trailErr
}

func (f *fakeCategoryRepo) MoveAllowed(_ context.Context, _, _ bson.ObjectID) (bool, error) {
	return f.moveAllowed, nil
}

func (f *fakeCategoryRepo) AddProperty(_ context.Context, _ bson.ObjectID, _ cataloguecategory.Property) error {
	return nil
}

func (f *fakeCategoryRepo) ReplaceProperty(_ context.Context, _ bson.ObjectID, _ cataloguecategory.Property) error {
	return nil
}

// fakeUnitRepo resolves a fixed set of units.
type fakeUnitRepo struct {
	units map[bson.ObjectID]*unit.Unit
}

func (f *fakeUnitRepo) Create(_ context.Context, u *unit.Unit) (*unit.Unit, error) { return u, nil }
func (f *fakeUnitRepo) GetByID(_ context.Context, id bson.ObjectID) (*unit.Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, unit.ErrUnitNotFound
	}
	return u, nil
}
func (f *fakeUnitRepo) List(_ context.Context) ([]unit.Unit, error)                 { return nil, nil }
func (f *fakeUnitRepo) Delete(_ context.Context, _ bson.ObjectID) error             { return nil }
func (f *fakeUnitRepo) CodeExists(_ context.Context, _ string) (bool, error)        { return false, nil }
func (f *fakeUnitRepo) InUse(_ context.Context, _ bson.ObjectID) (bool, error)      { return false, nil }

func newTestService(repo *fakeCategoryRepo) cataloguecategory.Service {
	return NewService(repo, &fakeUnitRepo{units: map[bson.ObjectID]*unit.Unit{}})
}

func TestCategoryCreateRoot(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), cataloguecategory.CreateCatalogueCategoryReq{
		Name:   "Test Category",
		IsLeaf: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "test-category", created.Code)
	assert.Nil(t, created.ParentID)
	assert.Empty(t, created.Properties)
}

func TestCategoryCreateDuplicate(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.codeExists = true
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), cataloguecategory.CreateCatalogueCategoryReq{Name: "Test Category"})
	assert.ErrorIs(t, err, cataloguecategory.ErrDuplicateCatalogueCategory)
}

func TestCategoryCreateUnderLeaf(t *testing.T) {
	repo := newFakeCategoryRepo()
	leaf := repo.add(&cataloguecategory.CatalogueCategory{Name: "Leaf", IsLeaf: true})
	svc := newTestService(repo)

	parentID := leaf.ID.Hex()
	_, err := svc.Create(context.Background(), cataloguecategory.CreateCatalogueCategoryReq{
		Name:     "Child",
		ParentID: &parentID,
	})
	assert.ErrorIs(t, err, cataloguecategory.ErrLeafParent)
}

func TestCategoryCreateMissingParent(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := newTestService(repo)

	missing := bson.NewObjectID().Hex()
	_, err := svc.Create(context.Background(), cataloguecategory.CreateCatalogueCategoryReq{
		Name:     "Child",
		ParentID: &missing,
	})
	assert.ErrorIs(t, err, cataloguecategory.ErrParentNotFound)
}

func TestCategoryCreateNonLeafDiscardsProperties(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), cataloguecategory.CreateCatalogueCategoryReq{
		Name:       "Cameras",
		IsLeaf:     false,
		Properties: []cataloguecategory.PropertyReq{{Name: "Resolution", Type: "number"}},
	})
	require.NoError(t, err)
	assert.Empty(t, created.Properties)
}

func TestCategoryCreateLeafWithProperties(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), cataloguecategory.CreateCatalogueCategoryReq{
		Name:   "Cameras",
		IsLeaf: true,
		Properties: []cataloguecategory.PropertyReq{
			{Name: "Resolution", Type: "number", Mandatory: true},
			{Name: "Broken", Type: "boolean"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Properties, 2)
	assert.False(t, created.Properties[0].ID.IsZero())
}

func TestCategoryCreateUnknownUnit(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := newTestService(repo)

	unitID := bson.NewObjectID().Hex()
	_, err := svc.Create(context.Background(), cataloguecategory.CreateCatalogueCategoryReq{
		Name:   "Cameras",
		IsLeaf: true,
		Properties: []cataloguecategory.PropertyReq{
			{Name: "Resolution", Type: "number", UnitID: &unitID},
		},
	})
	assert.ErrorIs(t, err, cataloguecategory.ErrUnitNotFound)
}

func TestCategoryUpdateIsLeafBlockedByChildren(t *testing.T) {
	repo := newFakeCategoryRepo()
	c := repo.add(&cataloguecategory.CatalogueCategory{Name: "Parent"})
	repo.hasChildren = true
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), c.ID, cataloguecategory.UpdateCatalogueCategoryReq{
		IsLeaf: optional.Of(true),
	})
	assert.ErrorIs(t, err, cataloguecategory.ErrChildElementsExist)
}

func TestCategoryUpdateMoveCycle(t *testing.T) {
	repo := newFakeCategoryRepo()
	a := repo.add(&cataloguecategory.CatalogueCategory{Name: "A"})
	dest := repo.add(&cataloguecategory.CatalogueCategory{Name: "C"})
	repo.moveAllowed = false
	svc := newTestService(repo)

	destID := dest.ID.Hex()
	_, err := svc.Update(context.Background(), a.ID, cataloguecategory.UpdateCatalogueCategoryReq{
		ParentID: optional.Of(&destID),
	})
	var invalid apperrors.InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Cannot move a catalogue category to one of its own children", invalid.Detail)
}

func TestCategoryUpdateMoveToRoot(t *testing.T) {
	repo := newFakeCategoryRepo()
	parent := repo.add(&cataloguecategory.CatalogueCategory{Name: "Parent"})
	child := repo.add(&cataloguecategory.CatalogueCategory{Name: "Child", ParentID: &parent.ID})
	svc := newTestService(repo)

	updated, err := svc.Update(context.Background(), child.ID, cataloguecategory.UpdateCatalogueCategoryReq{
		ParentID: optional.Of[*string](nil),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ParentID)
}

func TestCategoryUpdateRenameRegeneratesCode(t *testing.T) {
	repo := newFakeCategoryRepo()
	c := repo.add(&cataloguecategory.CatalogueCategory{Name: "Old Name", Code: "old-name"})
	svc := newTestService(repo)

	updated, err := svc.Update(context.Background(), c.ID, cataloguecategory.UpdateCatalogueCategoryReq{
		Name: optional.Of("New Name"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Code)
}

func TestCategoryUpdateEmptyPatch(t *testing.T) {
	repo := newFakeCategoryRepo()
	c := repo.add(&cataloguecategory.CatalogueCategory{Name: "Unchanged", Code: "unchanged"})
	svc := newTestService(repo)

	updated, err := svc.Update(context.Background(), c.ID, cataloguecategory.UpdateCatalogueCategoryReq{})
	require.NoError(t, err)
	assert.Equal(t, "Unchanged", updated.Name)
	require.NotNil(t, repo.updated)
}

func TestCategoryDeleteBlockedByCatalogueItems(t *testing.T) {
	repo := newFakeCategoryRepo()
	c := repo.add(&cataloguecategory.CatalogueCategory{Name: "Leaf", IsLeaf: true})
	repo.hasCatalogueItems = true
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), c.ID)
	assert.ErrorIs(t, err, cataloguecategory.ErrChildElementsExist)
	assert.Empty(t, repo.deleted)
}

func TestCategoryDeleteMissing(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, cataloguecategory.ErrCatalogueCategoryNotFound)
}

func TestCategoryBreadcrumbsErrors(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := newTestService(repo)

	repo.trailErr = treequery.ErrEntityNotFound
	_, err := svc.Breadcrumbs(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, cataloguecategory.ErrCatalogueCategoryNotFound)

	repo.trailErr = treequery.ErrDanglingParent
	_, err = svc.Breadcrumbs(context.Background(), bson.NewObjectID())
	var integrity apperrors.DatabaseIntegrityError
	assert.ErrorAs(t, err, &integrity)
}
