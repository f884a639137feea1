package graph

import (
	"context"

	"employeegraph/models"
	"employeegraph/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories mirroring the lenient contracts of the Mongo
// implementations.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindManyByID(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	out := make([]*models.User, len(ids))
	for i, id := range ids {
		out[i], _ = f.FindByID(ctx, id)
	}
	return out, nil
}

func (f *fakeUserRepo) Upsert(_ context.Context, user *models.User) (*models.User, error) {
	for _, u := range f.users {
		if u.Name == user.Name && u.Email == user.Email && u.Password == user.Password {
			return u, nil
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	f.users = append(f.users, &stored)
	return &stored, nil
}

type fakeEmployeeRepo struct {
	employees []*models.Employee
}

func (f *fakeEmployeeRepo) ListOwnedBy(_ context.Context, userID primitive.ObjectID) ([]*models.Employee, error) {
	out := []*models.Employee{}
	for _, e := range f.employees {
		for _, id := range e.UserIDs {
			if id == userID {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByListID(_ context.Context, listID primitive.ObjectID) ([]*models.Employee, error) {
	out := []*models.Employee{}
	for _, e := range f.employees {
		if e.ListID != nil && *e.ListID == listID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, fields repository.EmployeeFields, ownerID primitive.ObjectID) (*models.Employee, error) {
	e := &models.Employee{
		ID:          primitive.NewObjectID(),
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Age:         fields.Age,
		Address:     fields.Address,
		PhoneNumber: fields.PhoneNumber,
		CreatedAt:   "2026-01-01T00:00:00Z",
		UserIDs:     []primitive.ObjectID{ownerID},
		ListID:      fields.ListID,
	}
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id primitive.ObjectID, fields repository.EmployeeFields) (*models.Employee, error) {
	e, _ := f.GetByID(ctx, id)
	if e == nil {
		return nil, nil
	}
	e.FirstName = fields.FirstName
	e.LastName = fields.LastName
	e.Age = fields.Age
	e.Address = fields.Address
	e.PhoneNumber = fields.PhoneNumber
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, e := range f.employees {
		if e.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			break
		}
	}
	// True whether or not anything matched.
	return true, nil
}

type fakeEmployeeListRepo struct {
	lists []*models.EmployeeList
}

func (f *fakeEmployeeListRepo) ListOwnedBy(_ context.Context, userID primitive.ObjectID) ([]*models.EmployeeList, error) {
	out := []*models.EmployeeList{}
	for _, l := range f.lists {
		for _, id := range l.UserIDs {
			if id == userID {
				out = append(out, l)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeEmployeeListRepo) Create(_ context.Context, title string, ownerID primitive.ObjectID) (*models.EmployeeList, error) {
	l := &models.EmployeeList{
		ID:        primitive.NewObjectID(),
		Title:     title,
		CreatedAt: "2026-01-01T00:00:00Z",
		UserIDs:   []primitive.ObjectID{ownerID},
	}
	f.lists = append(f.lists, l)
	return l, nil
}

func (f *fakeEmployeeListRepo) Update(_ context.Context, id primitive.ObjectID, title string) (*models.EmployeeList, error) {
	for _, l := range f.lists {
		if l.ID == id {
			l.Title = title
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeListRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, l := range f.lists {
		if l.ID == id {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			break
		}
	}
	return true, nil
}
