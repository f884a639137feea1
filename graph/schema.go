package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the full SDL served at /graphql. Owner expansion may yield
// null entries for users that have since been deleted, so the element
// type of `users` is nullable.
const Schema = `
schema {
    query: Query
    mutation: Mutation
}

type Query {
    myEmployeeList: [Employee!]!
    myEmployee(id: ID!): Employee!
    myEmployeeLists: [EmployeeList!]!
}

type Mutation {
    signUp(input: SignUpInput!): AuthUser!
    signIn(input: SignInInput!): AuthUser!

    createEmployee(firstName: String!, lastName: String!, age: Int!, address: String!, phoneNumber: String!, listId: ID): Employee!
    updateEmployee(id: ID!, firstName: String!, lastName: String!, age: Int!, address: String!, phoneNumber: String!): Employee!
    deleteEmployee(id: ID!): Boolean!

    createEmployeeList(title: String!): EmployeeList!
    updateEmployeeList(id: ID!, title: String!): EmployeeList!
    deleteEmployeeList(id: ID!): Boolean!
}

input SignUpInput {
    email: String!
    password: String!
    name: String!
    avatar: String
}

input SignInInput {
    email: String!
    password: String!
}

type AuthUser {
    user: User!
    token: String!
}

type User {
    id: ID!
    name: String!
    email: String!
    avatar: String
}

type Employee {
    id: ID!
    firstName: String!
    lastName: String!
    age: Int!
    address: String!
    phoneNumber: String!
    createdAt: String!
    users: [User]!
}

type EmployeeList {
    id: ID!
    title: String!
    createdAt: String!
    users: [User]!
    employees: [Employee!]!
}
`

// NewSchema parses the SDL against the resolver. It panics on a
// schema/resolver mismatch, which is a programming error.
func NewSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, resolver)
}
