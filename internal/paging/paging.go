package paging

// Policy normalizes caller-supplied limits for one listing family. Defaults
// and ceilings are configuration, not compiled-in constants.
type Policy struct {
  DefaultLimit int
  MaxLimit     int
}

// Page describes a single bounded page of results. All listing operations in
// this service request the first page; there is no cursor or offset paging.
type Page struct {
  Number int
  Size   int
}

// Clamp maps a raw limit to the effective page size: the default when the
// raw value is absent, zero or negative, and never more than the ceiling.
func (p Policy) Clamp(limit int) int {
  effective := limit
  if effective <= 0 {
    effective = p.DefaultLimit
  }
  if effective > p.MaxLimit {
    effective = p.MaxLimit
  }
  return effective
}

// FirstPage builds the page descriptor every listing operation uses.
func (p Policy) FirstPage(limit int) Page {
  return Page{Number: 0, Size: p.Clamp(limit)}
}

// Offset is the row offset the storage layer should skip to.
func (pg Page) Offset() int {
  return pg.Number * pg.Size
}
