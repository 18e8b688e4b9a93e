package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/insight"
	"github.com/priya-raman/shopsense/internal/recommend"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []recommend.Recommendation:
		return recommendationsTable(w, v)
	case []database.Customer:
		return customersTable(w, v)
	case *database.Customer:
		return customerDetail(w, v)
	case *database.Stats:
		return statsTable(w, v)
	case *insight.Profile:
		return profileTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recommendationsTable(w io.Writer, recs []recommend.Recommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("#", "Product", "Score", "Risk", "Reason")
	for i, rec := range recs {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			rec.Product,
			fmt.Sprintf("%.2f", rec.Score),
			fmt.Sprintf("%.2f", rec.Risk),
			truncate(rec.Reason, 60),
		})
	}
	return table.Render()
}

func customersTable(w io.Writer, customers []database.Customer) error {
	if len(customers) == 0 {
		fmt.Fprintln(w, "No customers found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tAGE\tGENDER\tSENTIMENT\tENGAGEMENT\tSOCIAL")
	fmt.Fprintln(tw, "----\t---\t------\t---------\t----------\t------")

	for _, c := range customers {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2f\t%.0f\t%s\n",
			truncate(c.Name, 25),
			c.Age,
			c.Gender,
			c.SentimentScore,
			c.EngagementScore,
			c.SocialActivity,
		)
	}

	return tw.Flush()
}

func customerDetail(w io.Writer, c *database.Customer) error {
	rec, err := c.ToRecord()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Name:        %s\n", c.Name)
	fmt.Fprintf(w, "Age:         %d\n", c.Age)
	fmt.Fprintf(w, "Gender:      %s\n", c.Gender)
	fmt.Fprintf(w, "Interests:   %s\n", joinOrNone(rec.Interests))
	fmt.Fprintf(w, "Purchases:   %s\n", joinOrNone(rec.PurchaseHistory))
	fmt.Fprintf(w, "Sentiment:   %.2f\n", c.SentimentScore)
	fmt.Fprintf(w, "Engagement:  %.0f/100\n", c.EngagementScore)
	fmt.Fprintf(w, "Social:      %s\n", c.SocialActivity)
	fmt.Fprintf(w, "Updated:     %s\n", c.UpdatedAt.Format("Jan 02, 2006"))

	return nil
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "Population Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total customers:        %d\n", s.TotalCustomers)
	fmt.Fprintf(w, "Average sentiment:      %.2f\n", s.AvgSentiment)
	fmt.Fprintf(w, "Average engagement:     %.1f\n", s.AvgEngagement)
	fmt.Fprintf(w, "Highly social:          %d\n", s.HighSocial)
	fmt.Fprintf(w, "At risk:                %d\n", s.AtRisk)
	return nil
}

func profileTable(w io.Writer, p *insight.Profile) error {
	fmt.Fprintf(w, "Profile: %s\n", p.Customer)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range p.Metrics {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t(%s)\n", m.Name, bar(m.Value), m.Value, m.Detail)
	}
	return tw.Flush()
}

// bar renders a metric value in [0, 2] as a fixed-width gauge
func bar(value float64) string {
	const width = 20
	filled := int(value / 2 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
