package repository

// Schema creates the houses table mirrored from the listing service. Numeric
// columns are nullable; a NULL maps to a missing feature.
const Schema = `
	CREATE TABLE IF NOT EXISTS houses (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		price_in_rp DOUBLE PRECISION,
		bedrooms DOUBLE PRECISION,
		bathrooms DOUBLE PRECISION,
		land_size_m2 DOUBLE PRECISION,
		building_size_m2 DOUBLE PRECISION,
		floors DOUBLE PRECISION,
		garages DOUBLE PRECISION,
		lat DOUBLE PRECISION,
		long DOUBLE PRECISION
	);
	CREATE INDEX IF NOT EXISTS houses_price_in_rp_idx ON houses (price_in_rp);
`

// HouseColumns are the insertable columns of the houses table, in CopyFrom order.
var HouseColumns = []string{
	"title",
	"address",
	"city",
	"price_in_rp",
	"bedrooms",
	"bathrooms",
	"land_size_m2",
	"building_size_m2",
	"floors",
	"garages",
	"lat",
	"long",
}
