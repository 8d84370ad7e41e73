// Package letters renders HR letters and forms from a template identifier
// and a flat token map, persisting the output to object storage. The
// returned storage key is the opaque document path stored on applications.
package letters

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"path"
	"text/template"

	"github.com/google/uuid"

	"smartrecruit/internal/storage"
)

// Template identifiers accepted by Render.
const (
	TemplateOfferLetter       = "offer_letter"
	TemplateAppointmentLetter = "appointment_letter"
)

// Token map keys the templates expect. Unset tokens render empty.
const (
	TokenCandidateName  = "candidate_name"
	TokenDesignation    = "designation"
	TokenDepartment     = "department"
	TokenSalary         = "salary"
	TokenCNIC           = "cnic"
	TokenJoiningDate    = "joining_date"
	TokenEmploymentType = "employment_type"
	TokenCurrentDate    = "current_date"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer produces a stored document from a template id and token map.
type Renderer interface {
	Render(ctx context.Context, templateID string, tokens map[string]string) (string, error)
}

// storageRenderer renders text templates and streams the result into the
// object store under letters/<template>/<uuid>.txt.
type storageRenderer struct {
	store     storage.Storage
	templates *template.Template
}

// NewRenderer parses the embedded letter templates and returns a renderer
// writing into the given store.
func NewRenderer(store storage.Storage) (Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse letter templates: %w", err)
	}
	return &storageRenderer{store: store, templates: tmpl}, nil
}

func (r *storageRenderer) Render(ctx context.Context, templateID string, tokens map[string]string) (string, error) {
	tmpl := r.templates.Lookup(templateID + ".tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("unknown letter template %q", templateID)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, tokens); err != nil {
		return "", fmt.Errorf("render %s: %w", templateID, err)
	}

	key := path.Join("letters", templateID, uuid.NewString()+".txt")
	info, err := r.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: "text/plain; charset=utf-8",
		Metadata:    map[string]string{"template-id": templateID},
	})
	if err != nil {
		return "", fmt.Errorf("store %s: %w", templateID, err)
	}
	return info.Key, nil
}
