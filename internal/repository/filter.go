package repository

import "strings"

// ListingFilter is the predicate over listings built from optional query
// parameters. Every set field contributes exactly one clause; clauses are
// AND-joined. A zero filter matches every listing.
type ListingFilter struct {
	Search     string // free-text token, case-insensitive substring
	Bedrooms   *int   // exact match
	Bathrooms  *int   // exact match
	TotalRooms *int   // exact match
	City       string // case-insensitive substring
	OwnerEmail string // case-insensitive substring
	MinRent    *int   // inclusive lower bound on rent_per_month
	MaxRent    *int   // inclusive upper bound on rent_per_month
}

// searchColumns is the fixed field set scanned by the free-text search.
// Numeric columns are matched as substrings of their decimal rendering;
// clients depend on that loose behavior.
var searchColumns = []string{
	"lower(city)",
	"CAST(bedrooms AS TEXT)",
	"CAST(bathrooms AS TEXT)",
	"lower(location)",
	"CAST(home_size_sqft AS TEXT)",
}

// SQL renders the filter as a WHERE clause (without the WHERE keyword) and
// its placeholder arguments. An empty filter yields ("", nil).
func (f ListingFilter) SQL() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		ors := make([]string, 0, len(searchColumns))
		for _, col := range searchColumns {
			ors = append(ors, "instr("+col+", ?) > 0")
			args = append(args, s)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	if f.Bedrooms != nil {
		conds = append(conds, "bedrooms = ?")
		args = append(args, *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		conds = append(conds, "bathrooms = ?")
		args = append(args, *f.Bathrooms)
	}
	if f.TotalRooms != nil {
		conds = append(conds, "total_rooms = ?")
		args = append(args, *f.TotalRooms)
	}
	if c := strings.ToLower(strings.TrimSpace(f.City)); c != "" {
		conds = append(conds, "instr(lower(city), ?) > 0")
		args = append(args, c)
	}
	if e := strings.ToLower(strings.TrimSpace(f.OwnerEmail)); e != "" {
		conds = append(conds, "instr(lower(owner_email), ?) > 0")
		args = append(args, e)
	}
	if f.MinRent != nil && f.MaxRent != nil {
		conds = append(conds, "rent_per_month BETWEEN ? AND ?")
		args = append(args, *f.MinRent, *f.MaxRent)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return strings.Join(conds, " AND "), args
}
