package adminapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/navio-dev/navio/pkg/page"
)

// dashboardPage shows counts across the dataset.
type dashboardPage struct {
	data *dataset
}

func (p *dashboardPage) Load(ctx context.Context, c page.Container, _ map[string]string) error {
	c.SetContent(fmt.Sprintf(
		`<section class="dashboard"><h1>Dashboard</h1><ul><li>%d properties</li><li>%d clients</li><li>%d agents</li><li>%d reservations</li></ul></section>`,
		len(p.data.Properties), len(p.data.Clients), len(p.data.Agents), len(p.data.Reservations)))
	return nil
}

func (p *dashboardPage) Destroy() {}

// propertiesPage lists all properties, optionally filtered by the
// "status" query value.
type propertiesPage struct {
	data *dataset
}

func (p *propertiesPage) Load(ctx context.Context, c page.Container, params map[string]string) error {
	status := params["status"]

	var b strings.Builder
	b.WriteString(`<section class="properties"><h1>Properties</h1><ul>`)
	for _, prop := range p.data.Properties {
		if status != "" && prop.Status != status {
			continue
		}
		fmt.Fprintf(&b, `<li><a href="/properties/%s">%s</a> (%s)</li>`, prop.ID, prop.Title, prop.Status)
	}
	b.WriteString(`</ul></section>`)
	c.SetContent(b.String())
	return nil
}

func (p *propertiesPage) Destroy() {}

// propertyDetailPage shows one property by the ":id" route param.
type propertyDetailPage struct {
	data *dataset
}

func (p *propertyDetailPage) Load(ctx context.Context, c page.Container, params map[string]string) error {
	prop, ok := p.data.property(params["id"])
	if !ok {
		return fmt.Errorf("property %q not found", params["id"])
	}
	c.SetContent(fmt.Sprintf(
		`<section class="property"><h1>%s</h1><p>%s</p><p>$%d</p><p>Status: %s</p></section>`,
		prop.Title, prop.Address, prop.Price, prop.Status))
	return nil
}

func (p *propertyDetailPage) Destroy() {}

// clientsPage lists the client book.
type clientsPage struct {
	data *dataset
}

func (p *clientsPage) Load(ctx context.Context, c page.Container, _ map[string]string) error {
	var b strings.Builder
	b.WriteString(`<section class="clients"><h1>Clients</h1><ul>`)
	for _, cl := range p.data.Clients {
		fmt.Fprintf(&b, `<li>%s &lt;%s&gt; %s</li>`, cl.Name, cl.Email, cl.Phone)
	}
	b.WriteString(`</ul></section>`)
	c.SetContent(b.String())
	return nil
}

func (p *clientsPage) Destroy() {}

// agentsPage lists the agency staff.
type agentsPage struct {
	data *dataset
}

func (p *agentsPage) Load(ctx context.Context, c page.Container, _ map[string]string) error {
	var b strings.Builder
	b.WriteString(`<section class="agents"><h1>Agents</h1><ul>`)
	for _, a := range p.data.Agents {
		fmt.Fprintf(&b, `<li>%s</li>`, a.Name)
	}
	b.WriteString(`</ul></section>`)
	c.SetContent(b.String())
	return nil
}

func (p *agentsPage) Destroy() {}

// reservationsPage lists viewing reservations with the property title
// resolved inline.
type reservationsPage struct {
	data *dataset
}

func (p *reservationsPage) Load(ctx context.Context, c page.Container, _ map[string]string) error {
	var b strings.Builder
	b.WriteString(`<section class="reservations"><h1>Reservations</h1><ul>`)
	for _, r := range p.data.Reservations {
		title := r.PropertyID
		if prop, ok := p.data.property(r.PropertyID); ok {
			title = prop.Title
		}
		fmt.Fprintf(&b, `<li>%s at %s on %s (%s)</li>`, r.ID, title, r.Date, r.Status)
	}
	b.WriteString(`</ul></section>`)
	c.SetContent(b.String())
	return nil
}

func (p *reservationsPage) Destroy() {}
