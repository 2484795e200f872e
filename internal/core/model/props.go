package model

// Typed views over node properties, one per entity kind. The graph
// returns heterogeneous property maps; these convert them to named
// optional fields at the edge of the core, with absent fields left zero.

type ProductProps struct {
	Description string
	Tagline     string
	Launched    string
	Varieties   []string
	Allergens   []string
}

type CompanyProps struct {
	Description  string
	Founded      string
	Headquarters string
	Mission      string
	CEO          string
}

type PersonProps struct {
	Role    string
	Company string
}

type TopicProps struct {
	Description string
	Goals       []string
	FocusAreas  []string
	Commitment  string
}

type StoreProps struct {
	StoreType string
	Locations string
	Website   string
}

type NutritionProps struct {
	ServingSize   string
	Calories      string
	Protein       string
	Fat           string
	Carbohydrates string
	Sugar         string
	Iron          string
	Calcium       string
}

func (n GraphNode) Product() ProductProps {
	return ProductProps{
		Description: n.StringProp("description"),
		Tagline:     n.StringProp("tagline"),
		Launched:    n.StringProp("launched"),
		Varieties:   n.ListProp("varieties"),
		Allergens:   n.ListProp("allergens"),
	}
}

func (n GraphNode) Company() CompanyProps {
	return CompanyProps{
		Description:  n.StringProp("description"),
		Founded:      n.StringProp("founded"),
		Headquarters: n.StringProp("headquarters"),
		Mission:      n.StringProp("mission"),
		CEO:          n.StringProp("ceo"),
	}
}

func (n GraphNode) Person() PersonProps {
	return PersonProps{
		Role:    n.StringProp("role"),
		Company: n.StringProp("company"),
	}
}

func (n GraphNode) Topic() TopicProps {
	return TopicProps{
		Description: n.StringProp("description"),
		Goals:       n.ListProp("goals"),
		FocusAreas:  n.ListProp("focus_areas"),
		Commitment:  n.StringProp("commitment"),
	}
}

func (n GraphNode) Store() StoreProps {
	return StoreProps{
		StoreType: n.StringProp("type"),
		Locations: n.StringProp("locations"),
		Website:   n.StringProp("website"),
	}
}

func (n GraphNode) Nutrition() NutritionProps {
	return NutritionProps{
		ServingSize:   n.StringProp("serving_size"),
		Calories:      n.StringProp("calories"),
		Protein:       n.StringProp("protein"),
		Fat:           n.StringProp("fat"),
		Carbohydrates: n.StringProp("carbohydrates"),
		Sugar:         n.StringProp("sugar"),
		Iron:          n.StringProp("iron"),
		Calcium:       n.StringProp("calcium"),
	}
}
