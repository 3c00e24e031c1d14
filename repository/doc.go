// Package repository wraps a dynamic value in a fluent [Repository] whose
// available methods depend on the value's handler-set.
//
// # Overview
//
// [From] classifies a subject with package dispatch and attaches the method
// table of its handler-set:
//
//	r, _ := repository.From(map[string]any{"user": map[string]any{"name": "Ada"}})
//	name, _ := r.Call("get", "user.name") // "Ada"
//
// Strings, Number, Arrays, Objects and Functions each have their own table.
// Arrays and Objects share the collection methods (get, set, remove,
// filterBy, sort, pluck, …) built on package objects; Arrays add the arr
// helpers; Strings use golang.org/x/text for case mapping.
//
// # Chaining
//
// [Repository.Do] calls a method and wraps its result in a new Repository,
// re-classifying the result. The receiver is never modified. The first
// failure sticks and is reported by [Repository.Err]:
//
//	r := repository.MustFrom(rows).
//	    Do("filterBy", "group", "primary").
//	    Do("sort", "value", "desc").
//	    Do("pluck", "name")
//	if err := r.Err(); err != nil {
//	    return err
//	}
//	names := r.Obtain()
//
// # Extensions
//
// Register methods at runtime via [Extend]. Extensions are scoped to one
// handler-set and take precedence over the built-in method of the same
// name:
//
//	repository.Extend(dispatch.Strings, "shout", func(s any, _ ...any) (any, error) {
//	    return strings.ToUpper(s.(string)) + "!", nil
//	})
package repository
