package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"courier-print-service/internal/domain"
	"courier-print-service/internal/escpos"
)

const receiptDivider = "--------------------------------\n"

// ComposeReceipt assembles the full byte stream for one document: banner
// header, emphasized package code, optional bare QR block, body, footer and
// cut. Identical inputs produce byte-identical output, which golden-file
// tests rely on; the timestamp is therefore an explicit input, not a clock
// read.
func ComposeReceipt(record domain.PackageRecord, qr *domain.QRResolution, opts domain.PrintOptions, now time.Time) ([]byte, error) {
	opts = opts.Normalized()

	cmds := []escpos.Command{
		escpos.Initialize(),

		// Header: fixed banner, centered, bold, large.
		escpos.Align(escpos.AlignCenter),
		escpos.Bold(true),
		escpos.Size(escpos.SizeQuad),
		escpos.Text(bannerFor(opts.PrintType) + "\n"),
		escpos.Size(escpos.SizeNormal),
		escpos.Bold(false),
		escpos.Text(receiptDivider),

		// Package code block, large and emphasized.
		escpos.Bold(true),
		escpos.Size(escpos.SizeDoubleHeight),
		escpos.Text(record.Code + "\n"),
		escpos.Size(escpos.SizeNormal),
		escpos.Bold(false),
	}

	if qr != nil {
		// Bare QR block: padding only, no caption text around the symbol.
		group, err := escpos.QRCode(qr.Payload, qrModuleFor(opts.LabelSize))
		if err != nil {
			return nil, domain.NewEncodingError(err)
		}
		cmds = append(cmds, escpos.Feed(1))
		cmds = append(cmds, group...)
		cmds = append(cmds, escpos.Feed(1))
	}

	cmds = append(cmds, bodyCommands(record, now)...)

	cmds = append(cmds,
		// Footer.
		escpos.Align(escpos.AlignCenter),
		escpos.Text(receiptDivider),
		escpos.Text("THANK YOU FOR SHIPPING WITH US\n"),
		escpos.Text("Powered by Sendy Courier\n"),
		escpos.Feed(3),
		escpos.Cut(),
	)

	data, err := escpos.Marshal(cmds)
	if err != nil {
		return nil, fmt.Errorf("compose receipt for %q: %w", record.Code, err)
	}
	return data, nil
}

func bannerFor(t domain.PrintType) string {
	switch t {
	case domain.PrintLabel:
		return "PARCEL LABEL"
	case domain.PrintInvoice:
		return "PARCEL INVOICE"
	default:
		return "PARCEL RECEIPT"
	}
}

func qrModuleFor(size domain.LabelSize) byte {
	switch size {
	case domain.LabelSmall:
		return escpos.QRModuleSmall
	case domain.LabelLarge:
		return escpos.QRModuleLarge
	default:
		return escpos.QRModuleMedium
	}
}

func bodyCommands(record domain.PackageRecord, now time.Time) []escpos.Command {
	var b strings.Builder

	b.WriteString("TO: " + strings.ToUpper(record.ReceiverName) + "\n")
	if record.ReceiverPhone != "" {
		b.WriteString("PHONE: " + record.ReceiverPhone + "\n")
	}
	if loc := cleanLocation(record.RouteDescription, record.DeliveryLocation); loc != "" {
		b.WriteString("LOCATION: " + loc + "\n")
	}
	if record.AgentName != "" {
		b.WriteString("AGENT: " + record.AgentName + "\n")
	}
	b.WriteString("PAYMENT: " + paymentLabel(record.PaymentStatus) + "\n")
	b.WriteString("DATE: " + now.Format("02 Jan 2006 15:04") + "\n")
	if record.Weight != "" {
		b.WriteString("WEIGHT: " + record.Weight + "\n")
	}
	if record.Dimensions != "" {
		b.WriteString("SIZE: " + record.Dimensions + "\n")
	}
	if record.SpecialInstructions != "" {
		b.WriteString("NOTE: " + record.SpecialInstructions + "\n")
	}

	return []escpos.Command{
		escpos.Align(escpos.AlignLeft),
		escpos.Text(receiptDivider),
		escpos.Text(b.String()),
	}
}

func paymentLabel(s domain.PaymentStatus) string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

var (
	// "A to B", "A -> B", "A → B": keep only the destination side.
	locationSeparator  = regexp.MustCompile(`(?i)\s+to\s+|\s*(?:->|=>|→)\s*`)
	locationDisallowed = regexp.MustCompile(`[^\w ,-]+`)
	locationSpaces     = regexp.MustCompile(`\s+`)
)

// cleanLocation derives the printable destination. An explicit delivery
// address wins over the free-text route description; route text is reduced
// to whatever follows the last "to"/arrow separator.
func cleanLocation(route, delivery string) string {
	src := strings.TrimSpace(delivery)
	if src == "" {
		src = strings.TrimSpace(route)
	}
	if src == "" {
		return ""
	}

	if parts := locationSeparator.Split(src, -1); len(parts) > 1 {
		src = parts[len(parts)-1]
	}

	src = locationDisallowed.ReplaceAllString(src, "")
	src = locationSpaces.ReplaceAllString(src, " ")
	return strings.ToUpper(strings.TrimSpace(src))
}
