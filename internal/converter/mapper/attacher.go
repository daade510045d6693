package mapper

import (
	"updl-converter/internal/converter/models"
	"updl-converter/internal/converter/parser"
)

// Attachment is the entity tree of one scope after edges have been applied.
type Attachment struct {
	Entities   []models.Entity
	Components []models.Component
	Events     []models.Event
	Actions    []models.Action
}

// Attach converts the entity-tree nodes among nodes and applies edges in
// order: component→entity, event→entity, action→event. Edges matching none
// of these are ignored. Callers pass only edges lying inside the scope.
//
// Records are values, so actions are attached to events before events are
// copied into entities. The three rules have disjoint source kinds, which
// makes the result independent of that ordering.
func Attach(nodes []parser.Node, edges []parser.Edge) Attachment {
	var (
		entityOrder    []string
		componentOrder []string
		eventOrder     []string
		actionOrder    []string
	)
	entities := make(map[string]*models.Entity)
	components := make(map[string]models.Component)
	events := make(map[string]*models.Event)
	actions := make(map[string]models.Action)

	for _, n := range nodes {
		rec, ok := record(n)
		if !ok {
			continue
		}
		switch r := rec.(type) {
		case models.Entity:
			if _, dup := entities[n.ID]; !dup {
				entities[n.ID] = &r
				entityOrder = append(entityOrder, n.ID)
			}
		case models.Component:
			if _, dup := components[n.ID]; !dup {
				components[n.ID] = r
				componentOrder = append(componentOrder, n.ID)
			}
		case models.Event:
			if _, dup := events[n.ID]; !dup {
				events[n.ID] = &r
				eventOrder = append(eventOrder, n.ID)
			}
		case models.Action:
			if _, dup := actions[n.ID]; !dup {
				actions[n.ID] = r
				actionOrder = append(actionOrder, n.ID)
			}
		}
	}

	// actions → events
	for _, e := range edges {
		action, ok := actions[e.Source]
		if !ok {
			continue
		}
		if ev, ok := events[e.Target]; ok {
			ev.Actions = append(ev.Actions, action)
		}
	}

	// components and events → entities
	for _, e := range edges {
		entity, ok := entities[e.Target]
		if !ok {
			continue
		}
		if c, ok := components[e.Source]; ok {
			entity.Components = append(entity.Components, c)
			continue
		}
		if ev, ok := events[e.Source]; ok {
			entity.Events = append(entity.Events, copyEvent(*ev))
		}
	}

	out := Attachment{
		Entities:   make([]models.Entity, 0, len(entityOrder)),
		Components: make([]models.Component, 0, len(componentOrder)),
		Events:     make([]models.Event, 0, len(eventOrder)),
		Actions:    make([]models.Action, 0, len(actionOrder)),
	}
	for _, id := range entityOrder {
		out.Entities = append(out.Entities, *entities[id])
	}
	for _, id := range componentOrder {
		out.Components = append(out.Components, components[id])
	}
	for _, id := range eventOrder {
		out.Events = append(out.Events, copyEvent(*events[id]))
	}
	for _, id := range actionOrder {
		out.Actions = append(out.Actions, actions[id])
	}
	return out
}

// copyEvent detaches the action slice so two owners never share a backing array.
func copyEvent(ev models.Event) models.Event {
	acts := make([]models.Action, len(ev.Actions))
	copy(acts, ev.Actions)
	ev.Actions = acts
	return ev
}
