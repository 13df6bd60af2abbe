/*
Package stockpile provides a schema-less, in-process entity-component store for games and simulations.

Stockpile keeps the set of "kinds" of object open-ended: entities are bare numeric
identifiers, and arbitrary named components (bags of tagged numeric fields) can be
attached to them at runtime. No component or field name is declared ahead of time.

Core Concepts:

  - Entity: a unique identifier; its view aggregates whatever components it carries.
  - Component: a named bag of FieldValues attached to an entity at runtime.
  - FieldValue: a tagged numeric value, Integer or Float, with a defined combination rule.
  - Query: a way to find entities by the set of component names they carry.

Basic Usage:

	// Create storage
	storage := stockpile.Factory.NewStorage()

	// Create an entity with a position component
	id, _ := storage.NewEntity(map[string]stockpile.Component{
		"position": {"x": stockpile.Float(0), "y": stockpile.Float(0)},
	})

	// Query entities by component names
	for _, e := range storage.EntitiesWith("position") {
		fmt.Println(e.ID())
	}

	// Mutate fields directly on the store
	storage.UpdateField(id, "position", "x", stockpile.Float(1))
	storage.IncrementField(id, "position", "x", stockpile.Float(1))

Larger scans can use the composite query engine and cursor:

	query := stockpile.Factory.NewQuery()
	node := query.And("position", "velocity")
	cursor := stockpile.Factory.NewCursor(node, storage)

	for cursor.Next() {
		e := cursor.CurrentEntity()
		// ...
	}

Stockpile is single-writer by design: the cursor lock defers structural mutations
during iteration, it does not make the store safe for concurrent use.
*/
package stockpile
