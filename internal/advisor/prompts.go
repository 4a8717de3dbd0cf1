package advisor

import "fmt"

const directLookupTemplate = `You are an expert on Indian cars. Provide structured JSON for '%s'.
Include: model, manufacturer, price_range_in_inr, mileage, engine_disp_or_power, fuel_type, transmission, seating, ground_clearance_mms, boot_space_liters, safety_rating_if_known, popular_trims, key_features, pros, cons.
Return ONLY JSON.`

func directLookupPrompt(name string) string {
	return fmt.Sprintf(directLookupTemplate, name)
}

const fallbackExtractionTemplate = `Extract JSON requirements from this user query:
%s
Return JSON only.`

func fallbackExtractionPrompt(query string) string {
	return fmt.Sprintf(fallbackExtractionTemplate, query)
}

func requirementsPrompt(query, _ string) string {
	return fmt.Sprintf(`You are a user requirements analyzer for car purchases.
Extract clear car requirements from the user text below and return JSON with budget_min, budget_max, fuel_preference, usage, transmission, seats, car_type, brand_preference, extra_requirements. Omit fields the user did not mention.

User text:
%s

Return ONLY JSON.`, query)
}

func candidatesPrompt(_, previous string) string {
	return fmt.Sprintf(`You are an automobile expert who knows the Indian car market.
Given the requirements below, suggest the top 5 cars available in India as a JSON array of objects with fields model, price_range_in_inr, mileage, fuel_type, transmission, seating, reason_short.

Requirements:
%s

Return ONLY JSON.`, previous)
}

func comparisonPrompt(_, previous string) string {
	return fmt.Sprintf(`You are a comparison specialist who evaluates value-for-money, safety, mileage and reliability.
Compare the candidate cars below and return the best 3 as a JSON array of objects with fields model, pros, cons, score.

Candidates:
%s

Return ONLY JSON.`, previous)
}

func recommendationPrompt(_, previous string) string {
	return fmt.Sprintf(`You are a final recommendation expert who summarises and guides purchases.
From the top 3 below, return the single best pick as a JSON object with fields model, reason, buying_tips.

Top 3:
%s

Return ONLY JSON.`, previous)
}
