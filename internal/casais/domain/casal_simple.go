package domain

import "time"

type CasalSimple struct {
	ID       string
	UserID   string
	Name     string
	Age      int
	IsDelete bool
	Date     time.Time
}

// CasalSimplePatch follows the same rule as CasalPatch: "" and 0 mean unset.
type CasalSimplePatch struct {
	Name string
	Age  int
}

func (c *CasalSimple) Apply(p CasalSimplePatch) {
	setIfNotEmpty(&c.Name, p.Name)
	if p.Age != 0 {
		c.Age = p.Age
	}
}
