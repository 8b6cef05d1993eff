package postgres

import (
	"strings"

	"bazaar/internal/domain/entity"
)

const centerPoint = "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography"

const nearbySelect = `
	SELECT p.*,
	       ST_AsBinary(p.coordinates::geometry) AS coordinates_wkb,
	       ST_Distance(p.coordinates, ` + centerPoint + `) AS distance,
	       u.name AS seller_name,
	       u.profile_image AS seller_profile_image,
	       u.rating AS seller_rating,
	       c.name AS category_name,
	       c.slug AS category_slug
	FROM products p
	LEFT JOIN users u ON u.id = p.seller_id
	LEFT JOIN categories c ON c.slug = p.category
`

// nearbyWhere builds the WHERE clause shared by the page and count queries.
// Arguments are returned in placeholder order.
func nearbyWhere(f entity.NearbyFilter) (string, []any) {
	clauses := []string{
		"p.coordinates IS NOT NULL",
		"p.is_available = TRUE",
		"p.is_sold = FALSE",
		"ST_DWithin(p.coordinates, " + centerPoint + ", ?)",
	}
	args := []any{f.Center.Lon(), f.Center.Lat(), f.RadiusMeters}

	if f.Category != "" {
		clauses = append(clauses, "p.category = ?")
		args = append(args, f.Category)
	}
	if f.Condition != "" {
		clauses = append(clauses, "p.condition = ?")
		args = append(args, string(f.Condition))
	}
	if f.MinPrice != nil {
		clauses = append(clauses, "p.price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		clauses = append(clauses, "p.price <= ?")
		args = append(args, *f.MaxPrice)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// nearbyPageQuery returns the page query, nearest first with the id as tie-break.
func nearbyPageQuery(f entity.NearbyFilter) (string, []any) {
	where, whereArgs := nearbyWhere(f)

	args := make([]any, 0, len(whereArgs)+4)
	args = append(args, f.Center.Lon(), f.Center.Lat())
	args = append(args, whereArgs...)
	args = append(args, f.Limit, f.Offset)

	return nearbySelect + where + "\n\tORDER BY distance ASC, p.id ASC\n\tLIMIT ? OFFSET ?", args
}

// nearbyCountQuery returns the total match count query, independent of paging.
func nearbyCountQuery(f entity.NearbyFilter) (string, []any) {
	where, args := nearbyWhere(f)

	return "SELECT COUNT(*) FROM products p " + where, args
}

const popularLocationsQuery = `
	SELECT p.location AS location, COUNT(*) AS count
	FROM products p
	WHERE p.is_available = TRUE
	  AND p.is_sold = FALSE
	  AND p.location IS NOT NULL
	  AND p.location <> ''
	GROUP BY p.location
	ORDER BY count DESC, p.location ASC
	LIMIT ?
`
