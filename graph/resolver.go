package graph

import (
	"context"

	"employeegraph/auth"
	"employeegraph/models"
	"employeegraph/repository"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolver is the root of the query/mutation surface. All dependencies
// are injected; there is no ambient state.
type Resolver struct {
	Users     repository.UserRepository
	Employees repository.EmployeeRepository
	Lists     repository.EmployeeListRepository
	Tokens    *auth.TokenService
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Avatar   *string
}

type SignInInput struct {
	Email    string
	Password string
}

// currentUser is the authorization gate: every mutating or listing
// operation calls it before touching the database. It checks only that
// a principal is present, not that it owns anything.
func currentUser(ctx context.Context) (*models.User, error) {
	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, auth.ErrNotAuthenticated
	}
	return user, nil
}

func parseID(id graphql.ID) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(string(id))
}

func (r *Resolver) MyEmployeeList(ctx context.Context) ([]*employeeResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := r.Employees.ListOwnedBy(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return r.wrapEmployees(employees), nil
}

// MyEmployee fetches a record by id. Ownership is not re-checked here;
// any signed-in principal may read any record it knows the id of.
func (r *Resolver) MyEmployee(ctx context.Context, args struct{ ID graphql.ID }) (*employeeResolver, error) {
	if _, err := currentUser(ctx); err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	employee, err := r.Employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return &employeeResolver{root: r, e: employee}, nil
}

func (r *Resolver) MyEmployeeLists(ctx context.Context) ([]*employeeListResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	lists, err := r.Lists.ListOwnedBy(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*employeeListResolver, len(lists))
	for i, l := range lists {
		out[i] = &employeeListResolver{root: r, l: l}
	}
	return out, nil
}

func (r *Resolver) SignUp(ctx context.Context, args struct{ Input SignUpInput }) (*authUserResolver, error) {
	hash, err := auth.HashPassword(args.Input.Password)
	if err != nil {
		return nil, err
	}

	user, err := r.Users.Upsert(ctx, &models.User{
		Name:     args.Input.Name,
		Email:    args.Input.Email,
		Password: hash,
		Avatar:   args.Input.Avatar,
	})
	if err != nil {
		return nil, err
	}

	return r.authUser(user)
}

func (r *Resolver) SignIn(ctx context.Context, args struct{ Input SignInInput }) (*authUserResolver, error) {
	user, err := r.Users.FindByEmail(ctx, args.Input.Email)
	if err != nil {
		return nil, err
	}
	// Same error for an unknown email and a wrong password.
	if user == nil || !auth.CheckPassword(args.Input.Password, user.Password) {
		return nil, auth.ErrInvalidCredentials
	}

	return r.authUser(user)
}

func (r *Resolver) authUser(user *models.User) (*authUserResolver, error) {
	token, err := r.Tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &authUserResolver{user: user, token: token}, nil
}

type createEmployeeArgs struct {
	FirstName   string
	LastName    string
	Age         int32
	Address     string
	PhoneNumber string
	ListID      *graphql.ID
}

func (r *Resolver) CreateEmployee(ctx context.Context, args createEmployeeArgs) (*employeeResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	fields := repository.EmployeeFields{
		FirstName:   args.FirstName,
		LastName:    args.LastName,
		Age:         args.Age,
		Address:     args.Address,
		PhoneNumber: args.PhoneNumber,
	}
	if args.ListID != nil {
		listID, err := parseID(*args.ListID)
		if err != nil {
			return nil, err
		}
		fields.ListID = &listID
	}

	employee, err := r.Employees.Create(ctx, fields, user.ID)
	if err != nil {
		return nil, err
	}
	return &employeeResolver{root: r, e: employee}, nil
}

type updateEmployeeArgs struct {
	ID          graphql.ID
	FirstName   string
	LastName    string
	Age         int32
	Address     string
	PhoneNumber string
}

func (r *Resolver) UpdateEmployee(ctx context.Context, args updateEmployeeArgs) (*employeeResolver, error) {
	if _, err := currentUser(ctx); err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	employee, err := r.Employees.Update(ctx, id, repository.EmployeeFields{
		FirstName:   args.FirstName,
		LastName:    args.LastName,
		Age:         args.Age,
		Address:     args.Address,
		PhoneNumber: args.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return &employeeResolver{root: r, e: employee}, nil
}

func (r *Resolver) DeleteEmployee(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if _, err := currentUser(ctx); err != nil {
		return false, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}

	return r.Employees.Delete(ctx, id)
}

func (r *Resolver) CreateEmployeeList(ctx context.Context, args struct{ Title string }) (*employeeListResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	list, err := r.Lists.Create(ctx, args.Title, user.ID)
	if err != nil {
		return nil, err
	}
	return &employeeListResolver{root: r, l: list}, nil
}

func (r *Resolver) UpdateEmployeeList(ctx context.Context, args struct {
	ID    graphql.ID
	Title string
}) (*employeeListResolver, error) {
	if _, err := currentUser(ctx); err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	list, err := r.Lists.Update(ctx, id, args.Title)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrEmployeeListNotFound
	}
	return &employeeListResolver{root: r, l: list}, nil
}

func (r *Resolver) DeleteEmployeeList(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if _, err := currentUser(ctx); err != nil {
		return false, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}

	return r.Lists.Delete(ctx, id)
}

func (r *Resolver) wrapEmployees(employees []*models.Employee) []*employeeResolver {
	out := make([]*employeeResolver, len(employees))
	for i, e := range employees {
		out[i] = &employeeResolver{root: r, e: e}
	}
	return out
}
