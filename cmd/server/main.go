package main

import (
	"fmt"
	"net/http"

	"employeegraph/auth"
	"employeegraph/config"
	"employeegraph/db"
	"employeegraph/db/mongo"
	"employeegraph/graph"
	"employeegraph/repository"
	"employeegraph/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	// Maintain indexes
	db.RunMigrations(cfg.MongoURI, cfg.DBName)

	mg := mongo.NewMongoDB(cfg.MongoURI)
	if err := mg.Connect(); err != nil {
		panic(err)
	}
	defer mg.Disconnect()

	database := mg.Client.Database(cfg.DBName)

	userRepo := repository.NewMongoUserRepo(database)
	employeeRepo := repository.NewMongoEmployeeRepo(database)
	listRepo := repository.NewMongoEmployeeListRepo(database)

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret))
	session := auth.NewSessionResolver(tokens, userRepo)

	schema := graph.NewSchema(&graph.Resolver{
		Users:     userRepo,
		Employees: employeeRepo,
		Lists:     listRepo,
		Tokens:    tokens,
	})

	routes.SetupRoutes(schema, session)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
