package form

import "portal/internal/domain/entity"

// Registry is the ordered catalog of onboarding sections. It is built once
// at process start and read-only thereafter; traversal order is the
// declaration order of sectionSchemas.
type Registry struct {
	order []entity.SectionID
	byID  map[entity.SectionID]Schema
}

// NewRegistry builds the immutable section registry.
func NewRegistry() *Registry {
	schemas := sectionSchemas()
	registry := &Registry{
		order: make([]entity.SectionID, 0, len(schemas)),
		byID:  make(map[entity.SectionID]Schema, len(schemas)),
	}
	for _, schema := range schemas {
		registry.order = append(registry.order, schema.SectionID())
		registry.byID[schema.SectionID()] = schema
	}

	return registry
}

// SectionIDs returns the fixed traversal order of the onboarding flow.
func (r *Registry) SectionIDs() []entity.SectionID {
	ids := make([]entity.SectionID, len(r.order))
	copy(ids, r.order)

	return ids
}

// Schema returns the schema for a section, if the section exists.
func (r *Registry) Schema(id entity.SectionID) (Schema, bool) {
	schema, ok := r.byID[id]

	return schema, ok
}

// Defaults returns the default answer for a section, if the section exists.
func (r *Registry) Defaults(id entity.SectionID) (any, bool) {
	schema, ok := r.byID[id]
	if !ok {
		return nil, false
	}

	return schema.Defaults(), true
}

// IsComplete reports whether the session has a stored answer for the section.
func (r *Registry) IsComplete(session *entity.OnboardingSession, id entity.SectionID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}

	return session.IsComplete(id)
}

// AllComplete reports whether every registered section has a stored answer.
func (r *Registry) AllComplete(session *entity.OnboardingSession) bool {
	return session.AllComplete(r.order)
}

// NextIncomplete returns the first section in traversal order without a
// stored answer. The second return is false when the flow is review-ready.
func (r *Registry) NextIncomplete(session *entity.OnboardingSession) (entity.SectionID, bool) {
	for _, id := range r.order {
		if !session.IsComplete(id) {
			return id, true
		}
	}

	return "", false
}

// IncompleteSections returns every section without a stored answer, in
// traversal order.
func (r *Registry) IncompleteSections(session *entity.OnboardingSession) []entity.SectionID {
	var incomplete []entity.SectionID
	for _, id := range r.order {
		if !session.IsComplete(id) {
			incomplete = append(incomplete, id)
		}
	}

	return incomplete
}

// State derives the session's lifecycle state against the registered sections.
func (r *Registry) State(session *entity.OnboardingSession) entity.OnboardingState {
	return session.State(r.order)
}
