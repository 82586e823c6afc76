// Package fixtures loads the dashboard dataset, either the embedded sample data or
// a YAML file supplied at startup, and validates every record before it is served.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/ortelius/command-center/model"
	"gopkg.in/yaml.v2"
)

//go:embed data/dashboard.yaml
var sampleData []byte

// ErrInvalidDataset wraps every validation failure reported by Validate.
var ErrInvalidDataset = errors.New("invalid dataset")

// Sample returns the embedded sample dataset.
func Sample() (model.Dataset, error) {
	return Parse(sampleData)
}

// Load reads the dataset at path. An empty path falls back to the embedded sample.
func Load(path string) (model.Dataset, error) {
	if path == "" {
		return Sample()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset and validates it.
func Parse(data []byte) (model.Dataset, error) {
	var ds model.Dataset
	if err := yaml.UnmarshalStrict(data, &ds); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(ds); err != nil {
		return model.Dataset{}, err
	}
	return ds, nil
}

// Validate ensures every record uses known enumeration values and in-range numbers.
// It stops at the first problem found.
func Validate(ds model.Dataset) error {
	if err := validateTickets(ds.Tickets); err != nil {
		return err
	}
	if err := validateVulnerabilities(ds.Vulnerabilities); err != nil {
		return err
	}
	if err := validateEndpoints(ds.Endpoints); err != nil {
		return err
	}
	return validateOperations(ds)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidDataset, fmt.Sprintf(format, args...))
}

func validateTickets(tickets []model.Ticket) error {
	seen := make(map[string]bool)
	for _, t := range tickets {
		if t.ID == "" {
			return invalid("ticket id is required")
		}
		if seen[t.ID] {
			return invalid("duplicate ticket id: %s", t.ID)
		}
		seen[t.ID] = true

		if t.Tier != 1 && t.Tier != 2 {
			return invalid("ticket %s: tier must be 1 or 2, got %d", t.ID, t.Tier)
		}
		if !t.Status.Valid() {
			return invalid("ticket %s: unknown status %q", t.ID, t.Status)
		}
		if !t.Priority.Valid() {
			return invalid("ticket %s: unknown priority %q", t.ID, t.Priority)
		}
		if !t.Category.Valid() {
			return invalid("ticket %s: unknown category %q", t.ID, t.Category)
		}
		if !t.Platform.Valid() {
			return invalid("ticket %s: unknown platform %q", t.ID, t.Platform)
		}
		if !t.Integration.Valid() {
			return invalid("ticket %s: unknown integration %q", t.ID, t.Integration)
		}
		if t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
			return invalid("ticket %s: created_at and updated_at are required", t.ID)
		}
		if t.UpdatedAt.Before(t.CreatedAt) {
			return invalid("ticket %s: updated_at precedes created_at", t.ID)
		}
	}
	return nil
}

func validateVulnerabilities(items []model.Vulnerability) error {
	seen := make(map[string]bool)
	for _, v := range items {
		if v.ID == "" {
			return invalid("vulnerability id is required")
		}
		if seen[v.ID] {
			return invalid("duplicate vulnerability id: %s", v.ID)
		}
		seen[v.ID] = true

		if !v.Severity.Valid() {
			return invalid("vulnerability %s: unknown severity %q", v.ID, v.Severity)
		}
		if !v.Exposure.Valid() {
			return invalid("vulnerability %s: unknown exposure %q", v.ID, v.Exposure)
		}
		if v.AffectedAssets < 0 {
			return invalid("vulnerability %s: affected_assets must not be negative", v.ID)
		}
		if v.Progress < 0 || v.Progress > 100 {
			return invalid("vulnerability %s: progress %d outside 0-100", v.ID, v.Progress)
		}
	}
	return nil
}

func validateEndpoints(endpoints []model.Endpoint) error {
	seen := make(map[string]bool)
	for _, e := range endpoints {
		if e.ID == "" {
			return invalid("endpoint id is required")
		}
		if seen[e.ID] {
			return invalid("duplicate endpoint id: %s", e.ID)
		}
		seen[e.ID] = true

		if !e.Type.Valid() {
			return invalid("endpoint %s: unknown device type %q", e.ID, e.Type)
		}
		if !e.Health.Valid() {
			return invalid("endpoint %s: unknown health %q", e.ID, e.Health)
		}
		if e.Vulnerabilities < 0 {
			return invalid("endpoint %s: vulnerabilities must not be negative", e.ID)
		}
		if e.PatchLevel < 0 || e.PatchLevel > 100 {
			return invalid("endpoint %s: patch_level %d outside 0-100", e.ID, e.PatchLevel)
		}
	}
	return nil
}

func validateOperations(ds model.Dataset) error {
	for _, w := range ds.Workflows {
		if !w.Type.Valid() {
			return invalid("workflow %s: unknown type %q", w.ID, w.Type)
		}
		if w.AutomationRate < 0 || w.AutomationRate > 100 {
			return invalid("workflow %s: automation_rate %d outside 0-100", w.ID, w.AutomationRate)
		}
	}
	for _, i := range ds.Integrations {
		if !i.Tool.Valid() {
			return invalid("unknown integration tool %q", i.Tool)
		}
		if !i.Status.Valid() {
			return invalid("integration %s: unknown status %q", i.Tool, i.Status)
		}
	}
	for _, a := range ds.KnowledgeBase {
		if !a.Category.Valid() {
			return invalid("knowledge article %s: unknown category %q", a.ID, a.Category)
		}
	}
	for p := range ds.SLATargets.ResponseMinutes {
		if !p.Valid() {
			return invalid("sla response target for unknown priority %q", p)
		}
	}
	for p := range ds.SLATargets.ResolutionHours {
		if !p.Valid() {
			return invalid("sla resolution target for unknown priority %q", p)
		}
	}
	return nil
}
