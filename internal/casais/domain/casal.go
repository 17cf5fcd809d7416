package domain

import "time"

// Casal is a couple record owned by one account.
type Casal struct {
	ID       string
	UserID   string
	Name     string
	Desc     string
	NiverH   string
	NiverM   string
	Tel      string
	Image    string // public URL at the media host
	PublicID string // media handle used to delete Image
	IsDelete bool
	Date     time.Time
}

// CasalPatch carries the fields of a partial update. Empty strings leave the
// stored value untouched, so an update cannot clear a field.
type CasalPatch struct {
	Name     string
	Desc     string
	NiverH   string
	NiverM   string
	Tel      string
	Image    string
	PublicID string
}

// Apply merges p into c.
func (c *Casal) Apply(p CasalPatch) {
	setIfNotEmpty(&c.Name, p.Name)
	setIfNotEmpty(&c.Desc, p.Desc)
	setIfNotEmpty(&c.NiverH, p.NiverH)
	setIfNotEmpty(&c.NiverM, p.NiverM)
	setIfNotEmpty(&c.Tel, p.Tel)
	setIfNotEmpty(&c.Image, p.Image)
	setIfNotEmpty(&c.PublicID, p.PublicID)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
