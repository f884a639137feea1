package graph

import (
	"context"

	"employeegraph/models"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type authUserResolver struct {
	user  *models.User
	token string
}

func (r *authUserResolver) User() *userResolver { return &userResolver{u: r.user} }
func (r *authUserResolver) Token() string      { return r.token }

type userResolver struct {
	u *models.User
}

func (r *userResolver) ID() graphql.ID  { return graphql.ID(r.u.ID.Hex()) }
func (r *userResolver) Name() string    { return r.u.Name }
func (r *userResolver) Email() string   { return r.u.Email }
func (r *userResolver) Avatar() *string { return r.u.Avatar }

type employeeResolver struct {
	root *Resolver
	e    *models.Employee
}

func (r *employeeResolver) ID() graphql.ID      { return graphql.ID(r.e.ID.Hex()) }
func (r *employeeResolver) FirstName() string   { return r.e.FirstName }
func (r *employeeResolver) LastName() string    { return r.e.LastName }
func (r *employeeResolver) Age() int32          { return r.e.Age }
func (r *employeeResolver) Address() string     { return r.e.Address }
func (r *employeeResolver) PhoneNumber() string { return r.e.PhoneNumber }
func (r *employeeResolver) CreatedAt() string   { return r.e.CreatedAt }

// Users expands the owner id set into full user objects. Positions are
// preserved; an owner that no longer exists comes back as null.
func (r *employeeResolver) Users(ctx context.Context) ([]*userResolver, error) {
	return r.root.expandOwners(ctx, r.e.UserIDs)
}

type employeeListResolver struct {
	root *Resolver
	l    *models.EmployeeList
}

func (r *employeeListResolver) ID() graphql.ID    { return graphql.ID(r.l.ID.Hex()) }
func (r *employeeListResolver) Title() string     { return r.l.Title }
func (r *employeeListResolver) CreatedAt() string { return r.l.CreatedAt }

func (r *employeeListResolver) Users(ctx context.Context) ([]*userResolver, error) {
	return r.root.expandOwners(ctx, r.l.UserIDs)
}

func (r *employeeListResolver) Employees(ctx context.Context) ([]*employeeResolver, error) {
	employees, err := r.root.Employees.ListByListID(ctx, r.l.ID)
	if err != nil {
		return nil, err
	}
	return r.root.wrapEmployees(employees), nil
}

func (r *Resolver) expandOwners(ctx context.Context, ids []primitive.ObjectID) ([]*userResolver, error) {
	users, err := r.Users.FindManyByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*userResolver, len(users))
	for i, u := range users {
		if u != nil {
			out[i] = &userResolver{u: u}
		}
	}
	return out, nil
}
