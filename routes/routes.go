package routes

import (
	"net/http"

	"employeegraph/auth"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

func SetupRoutes(schema *graphql.Schema, session *auth.SessionResolver) {
	http.Handle("/graphql", withCORS(withRecover(withSession(session, &relay.Handler{Schema: schema}))))
}
