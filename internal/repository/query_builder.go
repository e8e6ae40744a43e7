package repository

import (
	"fmt"
	"strings"

	"horizonbot/internal/model"
)

// Listing budgets in lakhs, whatever unit they were entered in
const (
	minBudgetLakhsExpr = "(CASE WHEN bp.min_budget_unit = 'crores' THEN bp.min_budget * 100 ELSE bp.min_budget END)"
	maxBudgetLakhsExpr = "(CASE WHEN bp.max_budget_unit = 'crores' THEN bp.max_budget * 100 ELSE bp.max_budget END)"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder(conditions ...string) *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: append([]string{"1=1"}, conditions...),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter bounds fieldName on both ends; nil bounds are skipped
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// addSearch matches one ILIKE pattern against any of the given fields
func (qb *queryBuilder) addSearch(term string, fieldNames ...string) {
	parts := make([]string, len(fieldNames))
	for i, f := range fieldNames {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", f, qb.argId)
	}
	qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
	qb.args = append(qb.args, "%"+term+"%")
	qb.argId++
}

// placeholder reserves the next positional argument
func (qb *queryBuilder) placeholder(arg interface{}) string {
	p := fmt.Sprintf("$%d", qb.argId)
	qb.args = append(qb.args, arg)
	qb.argId++
	return p
}

func (qb *queryBuilder) where() string {
	return strings.Join(qb.conditions, " AND ")
}

// applyListingFilter builds the WHERE clause for buy_properties bp joined
// with property_locations pl
func applyListingFilter(filter model.ListingFilter) *queryBuilder {
	qb := newQueryBuilder()

	if filter.ActiveOnly {
		qb.conditions = append(qb.conditions, "bp.is_property_active = true")
	}
	if filter.PropertyType != nil {
		qb.addCondition("%s = $%d", "bp.property_type", *filter.PropertyType)
	}
	if filter.Category != nil {
		qb.addCondition("%s = $%d", "bp.category", *filter.Category)
	}
	if filter.Configuration != nil {
		qb.addCondition("LOWER(%s) = LOWER($%d)", "bp.configuration", *filter.Configuration)
	}
	if filter.CommercialType != nil {
		qb.addCondition("%s = $%d", "bp.commercial_type", *filter.CommercialType)
	}
	if filter.Location != nil {
		qb.addCondition("%s ILIKE $%d", "pl.name", "%"+*filter.Location+"%")
	}
	if filter.LocationID != nil {
		qb.addCondition("%s = $%d", "bp.location_id", *filter.LocationID)
	}
	if filter.Status != nil {
		qb.addCondition("%s = $%d", "bp.status", *filter.Status)
	}
	if filter.MinBudgetMin != nil {
		qb.addCondition("%s >= $%d", minBudgetLakhsExpr, *filter.MinBudgetMin)
	}
	if filter.MaxBudgetMax != nil {
		qb.addCondition("%s <= $%d", maxBudgetLakhsExpr, *filter.MaxBudgetMax)
	}
	qb.AddFloatFilter("bp.area", filter.AreaMin, filter.AreaMax)
	if filter.Search != "" {
		qb.addSearch(filter.Search, "bp.project_name", "bp.configuration", "pl.name")
	}
	return qb
}

func orderClause(order model.SortOrder) string {
	if order == model.OldestFirst {
		return "bp.id ASC"
	}
	return "bp.id DESC"
}
