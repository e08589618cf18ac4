// Package mailer hands composed messages to an external mail client.
package mailer

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fukuside/aidea-memo/internal/domain"
)

// Deliverer receives a finished mailto link.
type Deliverer interface {
	Deliver(link string) error
}

// Composer implements domain.MessageComposer by building a mailto link.
type Composer struct {
	deliver Deliverer
	to      string
}

// Ensure Composer implements domain.MessageComposer.
var _ domain.MessageComposer = (*Composer)(nil)

// New creates a Composer addressing to and delivering through d.
func New(to string, d Deliverer) *Composer {
	return &Composer{to: to, deliver: d}
}

// Compose builds the mailto link and hands it off. Delivery is not verified.
func (c *Composer) Compose(subject, body string) error {
	if strings.TrimSpace(c.to) == "" {
		return domain.ErrNoMailTarget
	}
	return c.deliver.Deliver(Link(c.to, subject, body))
}

// Link returns mailto:<to>?subject=<subject>&body=<body> with both fields
// percent-encoded the way a URI component is.
func Link(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + EncodeComponent(subject) + "&body=" + EncodeComponent(body)
}

// componentFixups maps query escaping onto URI component escaping: spaces are
// %20 and the marks !'()* stay literal.
var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use inside a URI component.
func EncodeComponent(s string) string {
	return componentFixups.Replace(url.QueryEscape(s))
}

// Opener delivers links to the platform URL handler.
type Opener struct {
	// run executes the opener command; replaced in tests.
	run func(name string, args ...string) error
}

// NewOpener creates an Opener that starts the system handler.
func NewOpener() *Opener {
	return &Opener{run: func(name string, args ...string) error {
		// #nosec G204 - name is one of the fixed platform openers
		return exec.Command(name, args...).Start()
	}}
}

// Deliver opens link with the platform URL handler.
func (o *Opener) Deliver(link string) error {
	name, args := openCommand(runtime.GOOS, link)
	if err := o.run(name, args...); err != nil {
		return fmt.Errorf("open mail client: %w", err)
	}
	return nil
}

func openCommand(goos, link string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// Clipboard delivers links by copying them to the system clipboard.
type Clipboard struct{}

// Deliver copies link to the clipboard.
func (Clipboard) Deliver(link string) error {
	if err := clipboard.WriteAll(link); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// NewDeliverer returns the Deliverer for a [mail] delivery setting.
func NewDeliverer(delivery string) (Deliverer, error) {
	switch delivery {
	case "", domain.DeliveryOpen:
		return NewOpener(), nil
	case domain.DeliveryClipboard:
		return Clipboard{}, nil
	}
	return nil, fmt.Errorf("unknown mail delivery %q", delivery)
}
