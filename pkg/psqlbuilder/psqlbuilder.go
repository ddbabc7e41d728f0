package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder uses $N placeholders as required by lib/pq.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
