// Package endpoints defines the GraphQL types for managed endpoints.
package endpoints

import (
	"github.com/graphql-go/graphql"
)

// EndpointType represents a managed device and its security posture
var EndpointType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Endpoint",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"owner":           &graphql.Field{Type: graphql.String},
		"type":            &graphql.Field{Type: graphql.String},
		"platform":        &graphql.Field{Type: graphql.String},
		"location":        &graphql.Field{Type: graphql.String},
		"last_seen":       &graphql.Field{Type: graphql.String},
		"health":          &graphql.Field{Type: graphql.String},
		"vulnerabilities": &graphql.Field{Type: graphql.Int},
		"patch_level":     &graphql.Field{Type: graphql.Int},
		"encryption":      &graphql.Field{Type: graphql.Boolean},
	},
})
