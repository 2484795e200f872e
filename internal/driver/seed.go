package driver

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Seed statements build the starter knowledge graph. Every statement
// uses MERGE so re-running against a populated database adds nothing
// and overwrites nothing created elsewhere.

const seedCompaniesQuery = `
MERGE (global:Company {name: "Nestlé"})
ON CREATE SET global.description = "World's largest food and beverage company",
              global.founded = 1866,
              global.headquarters = "Vevey, Switzerland",
              global.ceo = "Mark Schneider"
MERGE (canada:Company {name: "Nestlé Canada"})
ON CREATE SET canada.description = "Leading food and beverage company in Canada with over 100 years of history",
              canada.founded = 1918,
              canada.headquarters = "Toronto, Canada",
              canada.mission = "Good Food, Good Life",
              canada.employees = "3000+"
MERGE (canada)-[:SUBSIDIARY_OF]->(global)
`

const seedCategoriesQuery = `
MERGE (chocolate:Category {name: "Chocolate & Confectionery"})
ON CREATE SET chocolate.description = "Premium chocolate bars, confectionery, and seasonal treats"
MERGE (beverages:Category {name: "Coffee & Beverages"})
ON CREATE SET beverages.description = "Coffee, creamers, and hot beverage products"
MERGE (dairy:Category {name: "Dairy & Nutrition"})
ON CREATE SET dairy.description = "Milk products, infant nutrition, and health-focused foods"
`

const seedProductsQuery = `
MERGE (kitkat:Product {name: "KitKat"})
ON CREATE SET kitkat.description = "Iconic chocolate wafer bar with crispy wafer fingers covered in milk chocolate",
              kitkat.launched = 1935,
              kitkat.tagline = "Have a break, have a KitKat"
MERGE (smarties:Product {name: "Smarties"})
ON CREATE SET smarties.description = "Colorful chocolate candies with a crispy sugar shell and creamy milk chocolate center",
              smarties.launched = 1937,
              smarties.colors = ["Red", "Orange", "Yellow", "Green", "Blue", "Mauve", "Pink", "Brown"]
MERGE (aero:Product {name: "Aero"})
ON CREATE SET aero.description = "Light, bubbly chocolate bar with unique aerated texture",
              aero.launched = 1935,
              aero.texture = "Aerated bubbles"
MERGE (coffeemate:Product {name: "Coffee-mate"})
ON CREATE SET coffeemate.description = "Premium coffee creamer that transforms your coffee experience",
              coffeemate.varieties = ["Original", "French Vanilla", "Hazelnut", "Caramel"]
WITH kitkat, smarties, aero, coffeemate
MATCH (chocolate:Category {name: "Chocolate & Confectionery"})
MATCH (beverages:Category {name: "Coffee & Beverages"})
MATCH (canada:Company {name: "Nestlé Canada"})
MERGE (kitkat)-[:BELONGS_TO]->(chocolate)
MERGE (smarties)-[:BELONGS_TO]->(chocolate)
MERGE (aero)-[:BELONGS_TO]->(chocolate)
MERGE (coffeemate)-[:BELONGS_TO]->(beverages)
MERGE (kitkat)-[:PRODUCED_BY]->(canada)
MERGE (smarties)-[:PRODUCED_BY]->(canada)
MERGE (aero)-[:PRODUCED_BY]->(canada)
MERGE (coffeemate)-[:PRODUCED_BY]->(canada)
`

const seedTopicsQuery = `
MERGE (cocoaPlan:Topic {name: "Nestlé Cocoa Plan"})
ON CREATE SET cocoaPlan.description = "Comprehensive program to improve lives of cocoa farmers and quality of cocoa",
              cocoaPlan.launched = 2009,
              cocoaPlan.goals = ["Better farming", "Better lives", "Better cocoa"]
MERGE (sustainability:Topic {name: "Sustainability"})
ON CREATE SET sustainability.description = "Commitment to environmental stewardship and social responsibility",
              sustainability.focus_areas = ["Climate change", "Water stewardship", "Sustainable packaging"]
WITH cocoaPlan, sustainability
MATCH (canada:Company {name: "Nestlé Canada"})
MERGE (canada)-[:COMMITTED_TO]->(sustainability)
WITH cocoaPlan
MATCH (p:Product) WHERE p.name IN ["KitKat", "Smarties", "Aero"]
MERGE (p)-[:SUPPORTS]->(cocoaPlan)
`

const seedLeadershipQuery = `
MERGE (schneider:Person {name: "Mark Schneider"})
ON CREATE SET schneider.role = "CEO",
              schneider.company = "Nestlé Global"
WITH schneider
MATCH (global:Company {name: "Nestlé"})
MERGE (schneider)-[:CEO_OF]->(global)
`

const seedStoresQuery = `
MERGE (walmart:Store {name: "Walmart"})
ON CREATE SET walmart.type = "Supermarket Chain",
              walmart.locations = "Nationwide Canada",
              walmart.website = "walmart.ca"
MERGE (loblaws:Store {name: "Loblaws"})
ON CREATE SET loblaws.type = "Supermarket Chain",
              loblaws.locations = "Ontario, Atlantic Canada",
              loblaws.website = "loblaws.ca"
MERGE (metro:Store {name: "Metro"})
ON CREATE SET metro.type = "Supermarket Chain",
              metro.locations = "Ontario, Quebec",
              metro.website = "metro.ca"
MERGE (sobeys:Store {name: "Sobeys"})
ON CREATE SET sobeys.type = "Supermarket Chain",
              sobeys.locations = "Nationwide Canada",
              sobeys.website = "sobeys.com"
WITH walmart, loblaws, metro, sobeys
MATCH (p:Product) WHERE p.name IN ["KitKat", "Smarties", "Aero", "Coffee-mate"]
MERGE (p)-[:AVAILABLE_AT]->(walmart)
MERGE (p)-[:AVAILABLE_AT]->(loblaws)
MERGE (p)-[:AVAILABLE_AT]->(metro)
MERGE (p)-[:AVAILABLE_AT]->(sobeys)
`

const seedNutritionQuery = `
MATCH (kitkat:Product {name: "KitKat"})
MERGE (kn:Nutrition {product: "KitKat 4-finger bar"})
ON CREATE SET kn.serving_size = "41.5g",
              kn.calories = 210,
              kn.fat = "11g",
              kn.carbohydrates = "26g",
              kn.protein = "3g"
MERGE (kitkat)-[:HAS_NUTRITION]->(kn)
WITH kitkat
MATCH (smarties:Product {name: "Smarties"})
MERGE (sn:Nutrition {product: "Smarties"})
ON CREATE SET sn.serving_size = "15 pieces (17g)",
              sn.calories = 70,
              sn.fat = "2.5g",
              sn.carbohydrates = "12g",
              sn.protein = "1g"
MERGE (smarties)-[:HAS_NUTRITION]->(sn)
WITH smarties
MATCH (aero:Product {name: "Aero"})
MERGE (an:Nutrition {product: "Aero bar"})
ON CREATE SET an.serving_size = "42g",
              an.calories = 200,
              an.fat = "10g",
              an.carbohydrates = "25g",
              an.protein = "3g"
MERGE (aero)-[:HAS_NUTRITION]->(an)
`

// Seed creates the starter dataset. Statements run in dependency
// order; a failed statement is logged and the rest still run.
func Seed(ctx context.Context, d GraphDriver) error {
	steps := []struct {
		name  string
		query string
	}{
		{"companies", seedCompaniesQuery},
		{"categories", seedCategoriesQuery},
		{"products", seedProductsQuery},
		{"topics", seedTopicsQuery},
		{"leadership", seedLeadershipQuery},
		{"stores", seedStoresQuery},
		{"nutrition", seedNutritionQuery},
	}

	var firstErr error
	for _, step := range steps {
		if _, err := d.ExecuteQuery(ctx, step.query, nil); err != nil {
			log.Error().Err(err).Str("step", step.name).Msg("seed step failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Info().Str("step", step.name).Msg("seed step completed")
	}
	return firstErr
}
