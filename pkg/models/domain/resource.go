package domain

// ResourceCategory is a named group of resources running on one provider.
type ResourceCategory struct {
	Provider string
	Name     string // EC2 Instances
	Count    int
	Cost     float64 // monthly
}
