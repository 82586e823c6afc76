// Package vulnerabilities defines the GraphQL types for the remediation board.
package vulnerabilities

import (
	"github.com/graphql-go/graphql"
)

// VulnerabilityType represents a CVE being remediated across assets
var VulnerabilityType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Vulnerability",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"name":            &graphql.Field{Type: graphql.String},
		"cve":             &graphql.Field{Type: graphql.String},
		"severity":        &graphql.Field{Type: graphql.String},
		"affected_assets": &graphql.Field{Type: graphql.Int},
		"exposure":        &graphql.Field{Type: graphql.String},
		"remediation_eta": &graphql.Field{Type: graphql.String},
		"owner":           &graphql.Field{Type: graphql.String},
		"progress":        &graphql.Field{Type: graphql.Int},
	},
})
