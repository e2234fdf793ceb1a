package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/domains/item"
	"inventory-backend/internal/domains/system"
	"inventory-backend/internal/domains/usagestatus"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/optional"
	"inventory-backend/internal/shared/treequery"
)

// fakeItemRepo implements item.Repository over a map.
type fakeItemRepo struct {
	items map[bson.ObjectID]*item.Item

	updated *item.Item
	deleted []bson.ObjectID
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[bson.ObjectID]*item.Item{}}
}

func (f *fakeItemRepo) add(i *item.Item) *item.Item {
	if i.ID.IsZero() {
		i.ID = bson.NewObjectID()
	}
	f.items[i.ID] = i
	return i
}

// Create stores a snapshot, so later mutations of the returned pointer
// (the read-time property merge) do not leak into the stored document.
func (f *fakeItemRepo) Create(_ context.Context, i *item.Item) (*item.Item, error) {
	if i.ID.IsZero() {
		i.ID = bson.NewObjectID()
	}
	clone := *i
	f.items[i.ID] = &clone
	return i, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id bson.ObjectID) (*item.Item, error) {
	i, ok := f.items[id]
	if !ok {
		return nil, item.ErrItemNotFound
	}
	clone := *i
	return &clone, nil
}

func (f *fakeItemRepo) List(_ context.Context, _ item.ListFilter) ([]item.Item, error) {
	out := []item.Item{}
	for _, i := range f.items {
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, i *item.Item) error {
	clone := *i
	f.updated = &clone
	f.items[i.ID] = &clone
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id bson.ObjectID) error {
	f.deleted = append(f.deleted, id)
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) AddPropertyValue(_ context.Context, _ []bson.ObjectID, _ catalogueitem.PropertyValue) error {
	return nil
}

func (f *fakeItemRepo) RenameProperty(_ context.Context, _ bson.ObjectID, _ string) error {
	return nil
}

// fakeCatItemRepo holds the parent catalogue items.
type fakeCatItemRepo struct {
	items map[bson.ObjectID]*catalogueitem.CatalogueItem
}

func (f *fakeCatItemRepo) add(c *catalogueitem.CatalogueItem) *catalogueitem.CatalogueItem {
	if f.items == nil {
		f.items = map[bson.ObjectID]*catalogueitem.CatalogueItem{}
	}
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	f.items[c.ID] = c
	return c
}

func (f *fakeCatItemRepo) Create(_ context.Context, c *catalogueitem.CatalogueItem) (*catalogueitem.CatalogueItem, error) {
	return f.add(c), nil
}

func (f *fakeCatItemRepo) GetByID(_ context.Context, id bson.ObjectID) (*catalogueitem.CatalogueItem, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, catalogueitem.ErrCatalogueItemNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCatItemRepo) List(_ context.Context, _ catalogueitem.ListFilter) ([]catalogueitem.CatalogueItem, error) {
	return nil, nil
}

func (f *fakeCatItemRepo) Update(_ context.Context, _ *catalogueitem.CatalogueItem) error {
	return nil
}

func (f *fakeCatItemRepo) Delete(_ context.Context, _ bson.ObjectID) error { return nil }

func (f *fakeCatItemRepo) HasItems(_ context.Context, _ bson.ObjectID) (bool, error) {
	return false, nil
}

func (f *fakeCatItemRepo) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeCatItemRepo) ListIDsByCategory(_ context.Context, _ bson.ObjectID) ([]bson.ObjectID, error) {
	return nil, nil
}

func (f *fakeCatItemRepo) AddPropertyValue(_ context.Context, _ bson.ObjectID, _ catalogueitem.PropertyValue) error {
	return nil
}

func (f *fakeCatItemRepo) RenameProperty(_ context.Context, _ bson.ObjectID, _ string) error {
	return nil
}

// fakeCategoryRepo resolves the schema governing a parent catalogue
// item; everything else is unused here.
type fakeCategoryRepo struct {
	categories map[bson.ObjectID]*cataloguecategory.CatalogueCategory
}

func (f *fakeCategoryRepo) add(c *cataloguecategory.CatalogueCategory) *cataloguecategory.CatalogueCategory {
	if f.categories == nil {
		f.categories = map[bson.ObjectID]*cataloguecategory.CatalogueCategory{}
	}
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

// fakeSystemRepo resolves a fixed set of systems.
type fakeSystemRepo struct {
	systems map[bson.ObjectID]*system.System
}

func (f *fakeSystemRepo) add() *system.System {
	if f.systems == nil {
		f.systems = map[bson.ObjectID]*system.System{}
	}
	s := &system.System{ID: bson.NewObjectID(), Name: "Storage"}
	f.systems[s.ID] = s
	return s
}

func (f *fakeSystemRepo) Create(_ context.Context, s *system.System) (*system.System, error) {
	return s, nil
}

func (f *fakeSystemRepo) GetByID(_ context.Context, id bson.ObjectID) (*system.System, error) {
	s, ok := f.systems[id]
	if !ok {
		return nil, system.ErrSystemNotFound
	}
	return s, nil
}

func (f *fakeSystemRepo) List(_ context.Context, _ system.ListFilter) ([]system.System, error) {
	return nil, nil
}

func (f *fakeSystemRepo) Update(_ context.Context, _ *system.System) error { return nil }
func (f *fakeSystemRepo) Delete(_ context.Context, _ bson.ObjectID) error  { return nil }

func (f *fakeSystemRepo) HasChildSystems(_ context.Context, _ bson.ObjectID) (bool, error) {
	return false, nil
}

func (f *fakeSystemRepo) HasItems(_ context.Context, _ bson.ObjectID) (bool, error) {
	return false, nil
}

func (f *fakeSystemRepo) CodeExistsWithinParent(_ context.Context, _ *bson.ObjectID, _ string, _ bson.ObjectID) (bool, error) {
	return false, nil
}

func (f *fakeSystemRepo) Breadcrumbs(_ context.Context, _ bson.ObjectID) (*treequery.Trail, error) {
	return nil, treequery.ErrEntityNotFound
}

func (f *fakeSystemRepo) MoveAllowed(_ context.Context, _, _ bson.ObjectID) (bool, error) {
	return true, nil
}

// fakeUsageStatusRepo resolves a fixed set of usage statuses.
type fakeUsageStatusRepo struct {
	statuses map[bson.ObjectID]*usagestatus.UsageStatus
}

func (f *fakeUsageStatusRepo) add(value string) *usagestatus.UsageStatus {
	if f.statuses == nil {
		f.statuses = map[bson.ObjectID]*usagestatus.UsageStatus{}
	}
	s := &usagestatus.UsageStatus{ID: bson.NewObjectID(), Value: value}
	f.statuses[s.ID] = s
	return s
}

func (f *fakeUsageStatusRepo) Create(_ context.Context, s *usagestatus.UsageStatus) (*usagestatus.UsageStatus, error) {
	return s, nil
}

func (f *fakeUsageStatusRepo) GetByID(_ context.Context, id bson.ObjectID) (*usagestatus.UsageStatus, error) {
	s, ok := f.statuses[id]
	if !ok {
		return nil, usagestatus.ErrUsageStatusNotFound
	}
	return s, nil
}

func (f *fakeUsageStatusRepo) List(_ context.Context) ([]usagestatus.UsageStatus, error) {
	return nil, nil
}

func (f *fakeUsageStatusRepo) Delete(_ context.Context, _ bson.ObjectID) error { return nil }

func (f *fakeUsageStatusRepo) CodeExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeUsageStatusRepo) InUse(_ context.Context, _ bson.ObjectID) (bool, error) {
	return false, nil
}

type fixture struct {
	repo          *fakeItemRepo
	catItems      *fakeCatItemRepo
	categories    *fakeCategoryRepo
	systems       *fakeSystemRepo
	usageStatuses *fakeUsageStatusRepo
	svc           item.Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:          newFakeItemRepo(),
		catItems:      &fakeCatItemRepo{},
		categories:    &fakeCategoryRepo{},
		systems:       &fakeSystemRepo{},
		usageStatuses: &fakeUsageStatusRepo{},
	}
	f.svc = NewService(f.repo, f.catItems, f.categories, f.systems, f.usageStatuses)
	return f
}

// parentWithSchema builds a leaf category with two non-mandatory
// properties and a catalogue item carrying their values. The returned
// property is the one tests override.
func (f *fixture) parentWithSchema() (*catalogueitem.CatalogueItem, cataloguecategory.Property) {
	resolution := cataloguecategory.Property{
		ID:   bson.NewObjectID(),
		Name: "Resolution",
		Type: cataloguecategory.PropertyTypeNumber,
	}
	colour := cataloguecategory.Property{
		ID:   bson.NewObjectID(),
		Name: "Colour",
		Type: cataloguecategory.PropertyTypeString,
	}
	category := f.categories.add(&cataloguecategory.CatalogueCategory{
		Name:       "Cameras",
		IsLeaf:     true,
		Properties: []cataloguecategory.Property{resolution, colour},
	})
	parent := f.catItems.add(&catalogueitem.CatalogueItem{
		CatalogueCategoryID: category.ID,
		Name:                "Camera A",
		Properties: []catalogueitem.PropertyValue{
			{ID: resolution.ID, Name: resolution.Name, Value: 12.0},
			{ID: colour.ID, Name: colour.Name, Value: "red"},
		},
	})
	return parent, resolution
}

func (f *fixture) itemUnder(parent *catalogueitem.CatalogueItem) *item.Item {
	s := f.systems.add()
	status := f.usageStatuses.add("New")
	return f.repo.add(&item.Item{
		CatalogueItemID: parent.ID,
		SystemID:        s.ID,
		UsageStatusID:   status.ID,
		UsageStatus:     status.Value,
	})
}

func TestItemCreateCachesUsageStatusAndMerges(t *testing.T) {
	f := newFixture()
	parent, _ := f.parentWithSchema()
	s := f.systems.add()
	status := f.usageStatuses.add("In Use")

	created, err := f.svc.Create(context.Background(), item.CreateItemReq{
		CatalogueItemID: parent.ID.Hex(),
		SystemID:        s.ID.Hex(),
		UsageStatusID:   status.ID.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, "In Use", created.UsageStatus)

	// No overrides supplied: the response carries the parent's values,
	// but nothing was stored on the item itself.
	require.Len(t, created.Properties, 2)
	assert.Equal(t, 12.0, created.Properties[0].Value)
	assert.Equal(t, "red", created.Properties[1].Value)
	assert.Empty(t, f.repo.items[created.ID].Properties)
}

func TestItemCreateMissingUsageStatus(t *testing.T) {
	f := newFixture()
	parent, _ := f.parentWithSchema()
	s := f.systems.add()

	_, err := f.svc.Create(context.Background(), item.CreateItemReq{
		CatalogueItemID: parent.ID.Hex(),
		SystemID:        s.ID.Hex(),
		UsageStatusID:   bson.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, item.ErrUsageStatusNotFound)
}

func TestItemUpdateCatalogueItemImmutable(t *testing.T) {
	f := newFixture()
	parent, _ := f.parentWithSchema()
	other := f.catItems.add(&catalogueitem.CatalogueItem{
		CatalogueCategoryID: parent.CatalogueCategoryID,
		Name:                "Camera B",
	})
	i := f.itemUnder(parent)

	_, err := f.svc.Update(context.Background(), i.ID, item.UpdateItemReq{
		CatalogueItemID: optional.Of(other.ID.Hex()),
	})
	var invalid apperrors.InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Cannot change the catalogue item the item belongs to", invalid.Detail)
	assert.Nil(t, f.repo.updated)
}

func TestItemUpdateSameCatalogueItemAccepted(t *testing.T) {
	f := newFixture()
	parent, _ := f.parentWithSchema()
	i := f.itemUnder(parent)

	notes := "recalibrated"
	updated, err := f.svc.Update(context.Background(), i.ID, item.UpdateItemReq{
		CatalogueItemID: optional.Of(i.CatalogueItemID.Hex()),
		Notes:           optional.Of(&notes),
	})
	require.NoError(t, err)
	assert.Equal(t, "recalibrated", *updated.Notes)
}

func TestItemUpdateSystemMove(t *testing.T) {
	f := newFixture()
	parent, _ := f.parentWithSchema()
	i := f.itemUnder(parent)
	dest := f.systems.add()

	updated, err := f.svc.Update(context.Background(), i.ID, item.UpdateItemReq{
		SystemID: optional.Of(dest.ID.Hex()),
	})
	require.NoError(t, err)
	assert.Equal(t, dest.ID, updated.SystemID)

	_, err = f.svc.Update(context.Background(), i.ID, item.UpdateItemReq{
		SystemID: optional.Of(bson.NewObjectID().Hex()),
	})
	assert.ErrorIs(t, err, item.ErrSystemNotFound)
}

func TestItemUpdateOverridesStoredSparse(t *testing.T) {
	f := newFixture()
	parent, prop := f.parentWithSchema()
	i := f.itemUnder(parent)

	updated, err := f.svc.Update(context.Background(), i.ID, item.UpdateItemReq{
		Properties: optional.Of([]catalogueitem.PropertyValueReq{
			{ID: prop.ID.Hex(), Value: 24.0},
		}),
	})
	require.NoError(t, err)

	// Response is merged across the parent's full property set; the
	// stored document keeps only the override.
	require.Len(t, updated.Properties, 2)
	assert.Equal(t, 24.0, updated.Properties[0].Value)
	assert.Equal(t, "red", updated.Properties[1].Value)
	require.Len(t, f.repo.updated.Properties, 1)
	assert.Equal(t, prop.ID, f.repo.updated.Properties[0].ID)
	assert.Equal(t, 24.0, f.repo.updated.Properties[0].Value)
}
