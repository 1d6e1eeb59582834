package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/shallerhub/app/models"
)

// In-memory stores standing in for the Mongo repositories. Vendors keep
// insertion order because the feed depends on it.

type memVendorStore struct {
	vendors []models.Vendor
}

func (m *memVendorStore) FindByID(_ context.Context, id string) (models.Vendor, error) {
	for _, v := range m.vendors {
		if v.ID.Hex() == id {
			return v, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (m *memVendorStore) FindByEmail(_ context.Context, email string) (models.Vendor, error) {
	for _, v := range m.vendors {
		if v.Email == email {
			return v, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (m *memVendorStore) Create(_ context.Context, vendor *models.Vendor) error {
	for _, v := range m.vendors {
		if v.Email == vendor.Email {
			return ErrConflict
		}
	}
	if vendor.ID.IsZero() {
		vendor.ID = primitive.NewObjectID()
	}
	m.vendors = append(m.vendors, *vendor)
	return nil
}

func (m *memVendorStore) Update(_ context.Context, vendor *models.Vendor) error {
	for i, v := range m.vendors {
		if v.ID == vendor.ID {
			m.vendors[i] = *vendor
			return nil
		}
	}
	return ErrNotFound
}

func (m *memVendorStore) DeleteByID(_ context.Context, id string) error {
	for i, v := range m.vendors {
		if v.ID.Hex() == id {
			m.vendors = append(m.vendors[:i], m.vendors[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memVendorStore) All(_ context.Context) ([]models.Vendor, error) {
	out := make([]models.Vendor, len(m.vendors))
	copy(out, m.vendors)
	return out, nil
}

type memAdminStore struct {
	admins []models.Admin
}

func (m *memAdminStore) FindByID(_ context.Context, id string) (models.Admin, error) {
	for _, a := range m.admins {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return models.Admin{}, ErrNotFound
}

func (m *memAdminStore) FindByEmail(_ context.Context, email string) (models.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Admin{}, ErrNotFound
}

func (m *memAdminStore) Create(_ context.Context, admin *models.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	m.admins = append(m.admins, *admin)
	return nil
}

func (m *memAdminStore) Update(_ context.Context, admin *models.Admin) error {
	for i, a := range m.admins {
		if a.ID == admin.ID {
			m.admins[i] = *admin
			return nil
		}
	}
	return ErrNotFound
}

type memUserStore struct {
	users []models.User
}

func (m *memUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	for _, u := range m.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *memUserStore) FindByMobile(_ context.Context, mobile string) (models.User, error) {
	for _, u := range m.users {
		if u.MobileNumber == mobile {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserStore) Update(_ context.Context, user *models.User) error {
	for i, u := range m.users {
		if u.ID == user.ID {
			m.users[i] = *user
			return nil
		}
	}
	return ErrNotFound
}

func (m *memUserStore) All(_ context.Context) ([]models.User, error) {
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memUserStore) ClearExpiredOTPs(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for i, u := range m.users {
		if u.OTPExpiresAt != nil && u.OTPExpiresAt.Before(now) {
			m.users[i].OTPDigest = ""
			m.users[i].OTPExpiresAt = nil
			n++
		}
	}
	return n, nil
}

type memCatalogStore struct {
	categories []models.Category
	items      []models.Item
}

func (m *memCatalogStore) FindCategory(_ context.Context, id string) (models.Category, error) {
	for _, c := range m.categories {
		if c.ID.Hex() == id {
			return c, nil
		}
	}
	return models.Category{}, ErrNotFound
}

func (m *memCatalogStore) AllCategories(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *memCatalogStore) CreateCategory(_ context.Context, cat *models.Category) error {
	if cat.ID.IsZero() {
		cat.ID = primitive.NewObjectID()
	}
	if cat.SubCategories == nil {
		cat.SubCategories = []models.SubCategory{}
	}
	m.categories = append(m.categories, *cat)
	return nil
}

func (m *memCatalogStore) UpdateCategory(_ context.Context, cat *models.Category) error {
	for i, c := range m.categories {
		if c.ID == cat.ID {
			m.categories[i] = *cat
			return nil
		}
	}
	return ErrNotFound
}

func (m *memCatalogStore) DeleteCategory(_ context.Context, id string) error {
	for i, c := range m.categories {
		if c.ID.Hex() == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memCatalogStore) FindCategoryBySubCategory(_ context.Context, subID primitive.ObjectID) (models.Category, error) {
	for _, c := range m.categories {
		for _, sub := range c.SubCategories {
			if sub.ID == subID {
				return c, nil
			}
		}
	}
	return models.Category{}, ErrNotFound
}

func (m *memCatalogStore) FindItem(_ context.Context, id string) (models.Item, error) {
	for _, it := range m.items {
		if it.ID.Hex() == id {
			return it, nil
		}
	}
	return models.Item{}, ErrNotFound
}

func (m *memCatalogStore) ItemsBySubCategory(_ context.Context, subID primitive.ObjectID) ([]models.Item, error) {
	var out []models.Item
	for _, it := range m.items {
		if it.SubCategoryID == subID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memCatalogStore) CreateItem(_ context.Context, item *models.Item) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *memCatalogStore) UpdateItem(_ context.Context, item *models.Item) error {
	for i, it := range m.items {
		if it.ID == item.ID {
			m.items[i] = *item
			return nil
		}
	}
	return ErrNotFound
}

func (m *memCatalogStore) DeleteItem(_ context.Context, id string) error {
	for i, it := range m.items {
		if it.ID.Hex() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memImageStore struct {
	files map[string][]byte
	fail  bool
}

func (m *memImageStore) Put(path string, content []byte) error {
	if m.fail {
		return ErrUploadFailed
	}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[path] = content
	return nil
}

func (m *memImageStore) URL(path string) string {
	return "/storage/" + path
}

func shopVendor(name string, rating float64, review int) models.Vendor {
	id := primitive.NewObjectID()
	return models.Vendor{
		ID:    id,
		Email: name + "@example.com",
		Shaller: &models.Shaller{
			ShopName: name,
			Rating:   rating,
			Review:   review,
			VendorID: id,
		},
	}
}
