package schema

import "github.com/rebeliceyang/lazyfilter/internal/models"

// DemoColumns is the schema used when no schema source is given
func DemoColumns() []models.ColumnDef {
	return []models.ColumnDef{
		models.StringColumn("name"),
		models.NumberColumn("age"),
		models.DateColumn("date_of_birth"),
		models.BooleanColumn("is_18_or_over"),
		models.MultiSelectColumn("favorite_foods",
			models.Option{Label: "Pizza", Value: "pizza"},
			models.Option{Label: "Ramen", Value: "ramen"},
			models.Option{Label: "Tacos", Value: "tacos"},
			models.Option{Label: "Sushi", Value: "sushi"},
			models.Option{Label: "Burgers", Value: "burgers"},
			models.Option{Label: "Salad", Value: "salad"},
			models.Option{Label: "Curry", Value: "curry"},
			models.Option{Label: "Dumplings", Value: "dumplings"},
		),
	}
}
