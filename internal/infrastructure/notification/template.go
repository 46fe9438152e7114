package notification

import (
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/happydigitalmarketings/priyam/internal/domain/order"
)

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`<h2>Thank you for your order</h2>
<p>Hi {{.CustomerName}},</p>
<p>We have received your order. Order ID: <strong>#{{.OrderNumber}}</strong></p>
<table style="border-collapse:collapse;width:100%;margin-top:12px">
  <thead>
    <tr>
      <th style="padding:8px;border:1px solid #eee;text-align:left">Product</th>
      <th style="padding:8px;border:1px solid #eee;text-align:center">Qty</th>
      <th style="padding:8px;border:1px solid #eee;text-align:right">Price</th>
    </tr>
  </thead>
  <tbody>
    {{- range .Items}}
    <tr>
      <td style="padding:8px;border:1px solid #eee">{{.Title}}</td>
      <td style="padding:8px;border:1px solid #eee;text-align:center">{{.Quantity}}</td>
      <td style="padding:8px;border:1px solid #eee;text-align:right">&#8377;{{.Price}}</td>
    </tr>
    {{- end}}
  </tbody>
</table>
<p style="text-align:right;font-weight:700">Total: &#8377;{{.Total}}</p>
<p>Shipping Address:</p>
<p>{{.Address}}</p>
<p>If you have any questions, reply to this email.</p>
`))

type confirmationItem struct {
	Title    string
	Quantity int
	Price    string
}

type confirmationData struct {
	CustomerName string
	OrderNumber  string
	Items        []confirmationItem
	Total        string
	Address      string
}

func renderOrderConfirmation(o *order.Order) (string, error) {
	items := make([]confirmationItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, confirmationItem{
			Title:    it.Title,
			Quantity: it.Quantity,
			Price:    formatRupees(it.UnitPrice),
		})
	}

	addr := o.ShippingAddress
	addressParts := []string{addr.Address}
	if addr.Address2 != "" {
		addressParts = append(addressParts, addr.Address2)
	}
	addressParts = append(addressParts, addr.City, addr.State, addr.PostalCode)

	data := confirmationData{
		CustomerName: strings.TrimSpace(addr.FirstName + " " + addr.LastName),
		OrderNumber:  o.Number,
		Items:        items,
		Total:        formatRupees(o.Total),
		Address:      strings.Join(addressParts, ", "),
	}

	var buf strings.Builder
	if err := orderConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatRupees renders an amount with Indian digit grouping, e.g. 1,23,456.00
func formatRupees(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}

	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
