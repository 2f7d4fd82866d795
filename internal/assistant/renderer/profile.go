// internal/assistant/renderer/profile.go
package renderer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"inventory-assistant/internal/models"
)

// Template renders one Truth into a base response.
type Template func(models.Truth) string

// MessageKind names a reply that is not built from a Truth.
type MessageKind string

const (
	MessageEmptyInput MessageKind = "empty_input"
	MessageFailure    MessageKind = "failure"
)

// LanguageProfile is the static rendering table for one language.
type LanguageProfile struct {
	Code      string
	Name      string
	Script    *unicode.RangeTable
	Templates map[models.Intent]Template
	Messages  map[MessageKind]string
}

// maxListed items are named in a listing; the rest are counted.
const maxListed = 5

// phrases holds the translatable format strings of a profile. Arguments are
// positional so word order can differ between languages.
type phrases struct {
	stop string // sentence terminator
	sep  string // list and clause separator

	stockFound    string // product, quantity
	stockNotFound string // product
	askProduct    string

	lowEmpty, lowList           string // items
	deadEmpty, deadList         string // items
	overEmpty, overList         string // items
	expiringEmpty, expiringList string // days, items

	askCategory, categoryEmpty, categoryList string // category, items
	askSupplier, supplierEmpty, supplierList string // supplier, items

	detailsNotFound string // query
	detailsFound    string // product, quantity
	detailsCategory string
	detailsSupplier string
	detailsPrice    string
	detailsExpiry   string

	pricingNotFound string // query
	pricingFound    string // product, purchase, selling
	pricingMargin   string // margin

	summaryMissing string
	summary        string // products, stock units, purchase value, selling value, profit

	opinionNone string
	opinion     string // product, quantity sold

	greeting, help, unknown string

	demandSent             string // quantity, product, supplier, channel
	demandAskSupplier      string
	demandAskProduct       string
	demandAskQuantity      string // product
	demandSupplierNotFound string // supplier
	demandNotConfigured    string // supplier
	demandSendFailed       string // supplier
	channelEmail           string
	channelSMS             string

	more string // count

	emptyInput, failure string
}

func (p phrases) profile(code, name string, script *unicode.RangeTable) LanguageProfile {
	list := func(empty, nonEmpty string) Template {
		return func(t models.Truth) string {
			lt, _ := t.(models.ListTruth)
			if len(lt.Items) == 0 {
				return empty
			}
			return fmt.Sprintf(nonEmpty, p.items(lt.Items, false))
		}
	}
	filtered := func(ask, empty, nonEmpty string) Template {
		return func(t models.Truth) string {
			lt, _ := t.(models.ListTruth)
			switch {
			case lt.Filter == "":
				return ask
			case len(lt.Items) == 0:
				return fmt.Sprintf(empty, lt.Filter)
			}
			return fmt.Sprintf(nonEmpty, lt.Filter, p.items(lt.Items, false))
		}
	}

	return LanguageProfile{
		Code:   code,
		Name:   name,
		Script: script,
		Templates: map[models.Intent]Template{
			models.IntentStockQuery:          p.stock,
			models.IntentLowStock:            list(p.lowEmpty, p.lowList),
			models.IntentDeadStock:           list(p.deadEmpty, p.deadList),
			models.IntentOverstockedProducts: list(p.overEmpty, p.overList),
			models.IntentExpiringProducts:    p.expiring,
			models.IntentCategoryProducts:    filtered(p.askCategory, p.categoryEmpty, p.categoryList),
			models.IntentSupplierProducts:    filtered(p.askSupplier, p.supplierEmpty, p.supplierList),
			models.IntentProductDetails:      p.details,
			models.IntentProductPricing:      p.pricing,
			models.IntentInventorySummary:    p.inventorySummary,
			models.IntentOpinion:             p.opinionReply,
			models.IntentSupplierDemand:      p.demand,
			models.IntentGreeting:            static(p.greeting),
			models.IntentHelp:                static(p.help),
			models.IntentUnknown:             static(p.unknown),
		},
		Messages: map[MessageKind]string{
			MessageEmptyInput: p.emptyInput,
			MessageFailure:    p.failure,
		},
	}
}

func static(s string) Template {
	return func(models.Truth) string { return s }
}

func (p phrases) stock(t models.Truth) string {
	st, _ := t.(models.StockTruth)
	switch {
	case st.Product == "":
		return p.askProduct
	case st.Stock == nil:
		return fmt.Sprintf(p.stockNotFound, st.Product)
	}
	return fmt.Sprintf(p.stockFound, st.Product, amount(*st.Stock, st.Unit))
}

func (p phrases) expiring(t models.Truth) string {
	lt, _ := t.(models.ListTruth)
	days := strconv.Itoa(lt.Days)
	if len(lt.Items) == 0 {
		return fmt.Sprintf(p.expiringEmpty, days)
	}
	return fmt.Sprintf(p.expiringList, days, p.items(lt.Items, true))
}

func (p phrases) details(t models.Truth) string {
	dt, _ := t.(models.DetailsTruth)
	if dt.Product == nil {
		if dt.Query == "" {
			return p.askProduct
		}
		return fmt.Sprintf(p.detailsNotFound, dt.Query)
	}

	d := dt.Product
	parts := []string{fmt.Sprintf(p.detailsFound, d.ProductName, amount(d.CurrentStock, d.Unit))}
	if d.Category != "" {
		parts = append(parts, fmt.Sprintf(p.detailsCategory, d.Category))
	}
	if d.Supplier != "" {
		parts = append(parts, fmt.Sprintf(p.detailsSupplier, d.Supplier))
	}
	if d.SellingPrice != nil {
		parts = append(parts, fmt.Sprintf(p.detailsPrice, number(*d.SellingPrice)))
	}
	if d.ExpiryDate != nil {
		parts = append(parts, fmt.Sprintf(p.detailsExpiry, d.ExpiryDate.Format("2006-01-02")))
	}
	return strings.Join(parts, p.sep) + p.stop
}

func (p phrases) pricing(t models.Truth) string {
	pt, _ := t.(models.PricingTruth)
	if pt.Price == nil {
		if pt.Query == "" {
			return p.askProduct
		}
		return fmt.Sprintf(p.pricingNotFound, pt.Query)
	}

	pr := pt.Price
	s := fmt.Sprintf(p.pricingFound, pr.ProductName, number(pr.PurchasePrice), number(pr.SellingPrice))
	if pr.ProfitMargin != nil {
		s += p.sep + fmt.Sprintf(p.pricingMargin, number(*pr.ProfitMargin))
	}
	return s + p.stop
}

func (p phrases) inventorySummary(t models.Truth) string {
	st, _ := t.(models.SummaryTruth)
	if st.Summary == nil {
		return p.summaryMissing
	}
	s := st.Summary
	return fmt.Sprintf(p.summary,
		strconv.Itoa(s.TotalProducts), number(s.TotalStock),
		number(s.TotalValue), number(s.TotalSellingValue), number(s.PotentialProfit))
}

func (p phrases) opinionReply(t models.Truth) string {
	ot, _ := t.(models.OpinionTruth)
	if ot.Top == nil {
		return p.opinionNone
	}
	return fmt.Sprintf(p.opinion, ot.Top.ProductName, amount(ot.Top.TotalSold, ot.Top.Unit))
}

func (p phrases) demand(t models.Truth) string {
	dt, _ := t.(models.DemandTruth)
	switch dt.Outcome {
	case models.DemandMissingField:
		switch {
		case dt.Missing == models.FieldSupplier:
			return p.demandAskSupplier
		case dt.Missing == models.FieldProduct || dt.Product == "":
			return p.demandAskProduct
		}
		return fmt.Sprintf(p.demandAskQuantity, dt.Product)
	case models.DemandSupplierNotFound:
		return fmt.Sprintf(p.demandSupplierNotFound, dt.Supplier)
	case models.DemandNotConfigured:
		return fmt.Sprintf(p.demandNotConfigured, dt.Supplier)
	case models.DemandSent:
		qty := ""
		if dt.Quantity != nil {
			qty = amount(dt.Quantity.Amount, dt.Quantity.Unit)
		}
		return fmt.Sprintf(p.demandSent, qty, dt.Product, dt.Supplier, p.channel(dt.Channel))
	}
	return fmt.Sprintf(p.demandSendFailed, dt.Supplier)
}

func (p phrases) channel(c string) string {
	if c == "sms" {
		return p.channelSMS
	}
	return p.channelEmail
}

func (p phrases) items(lines []models.ProductLine, withExpiry bool) string {
	n := len(lines)
	if n > maxListed {
		lines = lines[:maxListed]
	}
	names := make([]string, 0, len(lines)+1)
	for _, l := range lines {
		detail := amount(l.CurrentStock, l.Unit)
		if withExpiry && l.ExpiryDate != nil {
			detail += p.sep + l.ExpiryDate.Format("2006-01-02")
		}
		names = append(names, fmt.Sprintf("%s (%s)", l.ProductName, detail))
	}
	if n > maxListed {
		names = append(names, fmt.Sprintf(p.more, n-maxListed))
	}
	return strings.Join(names, p.sep)
}

// number formats with at most two decimals and no trailing zeros.
func number(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

func amount(f float64, unit string) string {
	if unit == "" {
		return number(f)
	}
	return number(f) + " " + unit
}
