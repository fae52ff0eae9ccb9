// Package psqlbuilder обертка над squirrel с PostgreSQL placeholder-ами ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

// Select создает SELECT builder с dollar placeholder-ами
func Select(columns ...string) squirrel.SelectBuilder {
	return squirrel.Select(columns...).PlaceholderFormat(squirrel.Dollar)
}

// Insert создает INSERT builder с dollar placeholder-ами
func Insert(table string) squirrel.InsertBuilder {
	return squirrel.Insert(table).PlaceholderFormat(squirrel.Dollar)
}

// Update создает UPDATE builder с dollar placeholder-ами
func Update(table string) squirrel.UpdateBuilder {
	return squirrel.Update(table).PlaceholderFormat(squirrel.Dollar)
}

// Delete создает DELETE builder с dollar placeholder-ами
func Delete(table string) squirrel.DeleteBuilder {
	return squirrel.Delete(table).PlaceholderFormat(squirrel.Dollar)
}
