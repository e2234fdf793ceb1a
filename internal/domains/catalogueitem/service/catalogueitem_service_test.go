package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/domains/manufacturer"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/optional"
	"inventory-backend/internal/shared/treequery"
)

// fakeCatalogueItemRepo implements catalogueitem.Repository with
// overridable behaviour per test.
type fakeCatalogueItemRepo struct {
	items    map[bson.ObjectID]*catalogueitem.CatalogueItem
	hasItems bool

	updated *catalogueitem.CatalogueItem
	deleted []bson.ObjectID
}

func newFakeCatalogueItemRepo() *fakeCatalogueItemRepo {
	return &fakeCatalogueItemRepo{items: map[bson.ObjectID]*catalogueitem.CatalogueItem{}}
}

func (f *fakeCatalogueItemRepo) add(c *catalogueitem.CatalogueItem) *catalogueitem.CatalogueItem {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	f.items[c.ID] = c
	return c
}

func (f *fakeCatalogueItemRepo) Create(_ context.Context, c *catalogueitem.CatalogueItem) (*catalogueitem.CatalogueItem, error) {
	return f.add(c), nil
}

func (f *fakeCatalogueItemRepo) GetByID(_ context.Context, id bson.ObjectID) (*catalogueitem.CatalogueItem, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, catalogueitem.ErrCatalogueItemNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCatalogueItemRepo) List(_ context.Context, _ catalogueitem.ListFilter) ([]catalogueitem.CatalogueItem, error) {
	return nil, nil
}

func (f *fakeCatalogueItemRepo) Update(_ context.Context, c *catalogueitem.CatalogueItem) error {
	f.updated = c
	f.items[c.ID] = c
	return nil
}

func (f *fakeCatalogueItemRepo) Delete(_ context.Context, id bson.ObjectID) error {
	f.deleted = append(f.deleted, id)
	delete(f.items, id)
	return nil
}

func (f *fakeCatalogueItemRepo) HasItems(_ context.Context, _ bson.ObjectID) (bool, error) {
	return f.hasItems, nil
}

func (f *fakeCatalogueItemRepo) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeCatalogueItemRepo) ListIDsByCategory(_ context.Context, _ bson.ObjectID) ([]bson.ObjectID, error) {
	return nil, nil
}

func (f *fakeCatalogueItemRepo) AddPropertyValue(_ context.Context, _ bson.ObjectID, _ catalogueitem.PropertyValue) error {
	return nil
}

func (f *fakeCatalogueItemRepo) RenameProperty(_ context.Context, _ bson.ObjectID, _ string) error {
	return nil
}

// fakeCategoryRepo resolves categories for the service; tree and schema
// methods are unused here.
type fakeCategoryRepo struct {
	categories map[bson.ObjectID]*cataloguecategory.CatalogueCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[bson.ObjectID]*cataloguecategory.CatalogueCategory{}}
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
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, _ *cataloguecategory.CatalogueCategory) error {
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, _ bson.ObjectID) error { return nil }

func (f *fakeCategoryRepo) HasChildCategories(_ context.Context, _ bson.ObjectID) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) HasCatalogueItems(_ context.Context, _ bson.ObjectID) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) CodeExistsWithinParent(_ context.Context, _ *bson.ObjectID, _ string, _ bson.ObjectID) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) Breadcrumbs(_ context.Context, _ bson.ObjectID) (*treequery.Trail, error) {
	return nil, treequery.ErrEntityNotFound
}

func (f *fakeCategoryRepo) MoveAllowed(_ context.Context, _, _ bson.ObjectID) (bool, error) {
	return true, nil
}

func (f *fakeCategoryRepo) AddProperty(_ context.Context, _ bson.ObjectID, _ cataloguecategory.Property) error {
	return nil
}

func (f *fakeCategoryRepo) ReplaceProperty(_ context.Context, _ bson.ObjectID, _ cataloguecategory.Property) error {
	return nil
}

// fakeManufacturerRepo resolves a fixed set of manufacturers.
type fakeManufacturerRepo struct {
	manufacturers map[bson.ObjectID]*manufacturer.Manufacturer
}

func (f *fakeManufacturerRepo) add() *manufacturer.Manufacturer {
	if f.manufacturers == nil {
		f.manufacturers = map[bson.ObjectID]*manufacturer.Manufacturer{}
	}
	m := &manufacturer.Manufacturer{ID: bson.NewObjectID(), Name: "Acme"}
	f.manufacturers[m.ID] = m
	return m
}

func (f *fakeManufacturerRepo) Create(_ context.Context, m *manufacturer.Manufacturer) (*manufacturer.Manufacturer, error) {
	return m, nil
}

func (f *fakeManufacturerRepo) GetByID(_ context.Context, id bson.ObjectID) (*manufacturer.Manufacturer, error) {
	m, ok := f.manufacturers[id]
	if !ok {
		return nil, manufacturer.ErrManufacturerNotFound
	}
	return m, nil
}

func (f *fakeManufacturerRepo) List(_ context.Context) ([]manufacturer.Manufacturer, error) {
	return nil, nil
}

func (f *fakeManufacturerRepo) Update(_ context.Context, _ *manufacturer.Manufacturer) error {
	return nil
}

func (f *fakeManufacturerRepo) Delete(_ context.Context, _ bson.ObjectID) error { return nil }

func (f *fakeManufacturerRepo) CodeExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeManufacturerRepo) InUse(_ context.Context, _ bson.ObjectID) (bool, error) {
	return false, nil
}

type fixture struct {
	repo          *fakeCatalogueItemRepo
	categories    *fakeCategoryRepo
	manufacturers *fakeManufacturerRepo
	svc           catalogueitem.Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:          newFakeCatalogueItemRepo(),
		categories:    newFakeCategoryRepo(),
		manufacturers: &fakeManufacturerRepo{},
	}
	f.svc = NewService(f.repo, f.categories, f.manufacturers)
	return f
}

func (f *fixture) leafCategory(props ...cataloguecategory.Property) *cataloguecategory.CatalogueCategory {
	return f.categories.add(&cataloguecategory.CatalogueCategory{
		Name:       "Cameras",
		IsLeaf:     true,
		Properties: props,
	})
}

func (f *fixture) itemIn(category *cataloguecategory.CatalogueCategory, values ...catalogueitem.PropertyValue) *catalogueitem.CatalogueItem {
	m := f.manufacturers.add()
	return f.repo.add(&catalogueitem.CatalogueItem{
		CatalogueCategoryID: category.ID,
		ManufacturerID:      m.ID,
		Name:                "Camera A",
		Properties:          values,
	})
}

func numberProperty(name string) cataloguecategory.Property {
	return cataloguecategory.Property{
		ID:   bson.NewObjectID(),
		Name: name,
		Type: cataloguecategory.PropertyTypeNumber,
	}
}

func valuesFor(props []cataloguecategory.Property) []catalogueitem.PropertyValue {
	values := make([]catalogueitem.PropertyValue, len(props))
	for i := range props {
		values[i] = catalogueitem.PropertyValue{ID: props[i].ID, Name: props[i].Name}
	}
	return values
}

func TestCatalogueItemCreateNonLeafCategory(t *testing.T) {
	f := newFixture()
	nonLeaf := f.categories.add(&cataloguecategory.CatalogueCategory{Name: "Parent", IsLeaf: false})
	m := f.manufacturers.add()

	_, err := f.svc.Create(context.Background(), catalogueitem.CreateCatalogueItemReq{
		CatalogueCategoryID: nonLeaf.ID.Hex(),
		ManufacturerID:      m.ID.Hex(),
		Name:                "Camera A",
	})
	assert.ErrorIs(t, err, catalogueitem.ErrNonLeafCategory)
}

func TestCatalogueItemCreateMissingManufacturer(t *testing.T) {
	f := newFixture()
	leaf := f.leafCategory()

	_, err := f.svc.Create(context.Background(), catalogueitem.CreateCatalogueItemReq{
		CatalogueCategoryID: leaf.ID.Hex(),
		ManufacturerID:      bson.NewObjectID().Hex(),
		Name:                "Camera A",
	})
	assert.ErrorIs(t, err, catalogueitem.ErrManufacturerNotFound)
}

func TestCatalogueItemUpdateLockedByItems(t *testing.T) {
	newManufacturer := bson.NewObjectID().Hex()
	newCategory := bson.NewObjectID().Hex()

	tests := []struct {
		name string
		req  catalogueitem.UpdateCatalogueItemReq
	}{
		{"manufacturer change", catalogueitem.UpdateCatalogueItemReq{
			ManufacturerID: optional.Of(newManufacturer),
		}},
		{"category change", catalogueitem.UpdateCatalogueItemReq{
			CatalogueCategoryID: optional.Of(newCategory),
		}},
		{"properties patch", catalogueitem.UpdateCatalogueItemReq{
			Properties: optional.Of([]catalogueitem.PropertyValueReq{}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			leaf := f.leafCategory()
			c := f.itemIn(leaf)
			f.repo.hasItems = true

			_, err := f.svc.Update(context.Background(), c.ID, tt.req)
			assert.ErrorIs(t, err, catalogueitem.ErrChildElementsExist)
			assert.Nil(t, f.repo.updated)
		})
	}
}

func TestCatalogueItemUpdateUnchangedIDsSkipLockout(t *testing.T) {
	f := newFixture()
	props := []cataloguecategory.Property{numberProperty("Resolution")}
	leaf := f.leafCategory(props...)
	c := f.itemIn(leaf, valuesFor(props)...)
	f.repo.hasItems = true

	// Same hex values as stored: nothing actually changes, so the
	// child-element guard does not fire.
	_, err := f.svc.Update(context.Background(), c.ID, catalogueitem.UpdateCatalogueItemReq{
		CatalogueCategoryID: optional.Of(c.CatalogueCategoryID.Hex()),
		ManufacturerID:      optional.Of(c.ManufacturerID.Hex()),
		Name:                optional.Of("Camera B"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Camera B", f.repo.updated.Name)
}

func TestCatalogueItemUpdateMoveDifferentSchemaWithoutProperties(t *testing.T) {
	f := newFixture()
	oldProps := []cataloguecategory.Property{numberProperty("Resolution")}
	oldCategory := f.leafCategory(oldProps...)
	newCategory := f.leafCategory(numberProperty("Sensitivity"))
	c := f.itemIn(oldCategory, valuesFor(oldProps)...)

	_, err := f.svc.Update(context.Background(), c.ID, catalogueitem.UpdateCatalogueItemReq{
		CatalogueCategoryID: optional.Of(newCategory.ID.Hex()),
	})
	var invalid apperrors.InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t,
		"Cannot move catalogue item to a category with different properties without specifying the new properties",
		invalid.Detail)
}

func TestCatalogueItemUpdateMoveSameSchema(t *testing.T) {
	f := newFixture()
	shared := []cataloguecategory.Property{numberProperty("Resolution")}
	oldCategory := f.leafCategory(shared...)
	newCategory := f.leafCategory(shared...)
	c := f.itemIn(oldCategory, valuesFor(shared)...)

	updated, err := f.svc.Update(context.Background(), c.ID, catalogueitem.UpdateCatalogueItemReq{
		CatalogueCategoryID: optional.Of(newCategory.ID.Hex()),
	})
	require.NoError(t, err)
	assert.Equal(t, newCategory.ID, updated.CatalogueCategoryID)
	assert.Equal(t, valuesFor(shared), updated.Properties)
}

func TestCatalogueItemUpdateMoveWithProperties(t *testing.T) {
	f := newFixture()
	oldCategory := f.leafCategory(numberProperty("Resolution"))
	newProp := numberProperty("Sensitivity")
	newCategory := f.leafCategory(newProp)
	c := f.itemIn(oldCategory)

	updated, err := f.svc.Update(context.Background(), c.ID, catalogueitem.UpdateCatalogueItemReq{
		CatalogueCategoryID: optional.Of(newCategory.ID.Hex()),
		Properties: optional.Of([]catalogueitem.PropertyValueReq{
			{ID: newProp.ID.Hex(), Value: 800.0},
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, newCategory.ID, updated.CatalogueCategoryID)
	require.Len(t, updated.Properties, 1)
	assert.Equal(t, newProp.ID, updated.Properties[0].ID)
	assert.Equal(t, 800.0, updated.Properties[0].Value)
}

func TestCatalogueItemDeleteBlockedByItems(t *testing.T) {
	f := newFixture()
	leaf := f.leafCategory()
	c := f.itemIn(leaf)
	f.repo.hasItems = true

	err := f.svc.Delete(context.Background(), c.ID)
	assert.ErrorIs(t, err, catalogueitem.ErrChildElementsExist)
	assert.Empty(t, f.repo.deleted)
}
