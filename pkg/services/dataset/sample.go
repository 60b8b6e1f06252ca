package dataset

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// Sample returns the built-in demo dataset: one row per weekday. It is the
// dataset shown before any upload happens.
func Sample() domain.Dataset {
	return domain.Dataset{
		HasCategory: true,
		Rows: []domain.Row{
			{Day: "Senin", Category: "Makanan", Sales: 120, Visitors: 50},
			{Day: "Selasa", Category: "Minuman", Sales: 150, Visitors: 60},
			{Day: "Rabu", Category: "Makanan", Sales: 90, Visitors: 30},
			{Day: "Kamis", Category: "Minuman", Sales: 170, Visitors: 80},
			{Day: "Jumat", Category: "Makanan", Sales: 200, Visitors: 90},
			{Day: "Sabtu", Category: "Minuman", Sales: 220, Visitors: 120},
			{Day: "Minggu", Category: "Makanan", Sales: 180, Visitors: 100},
		},
	}
}
