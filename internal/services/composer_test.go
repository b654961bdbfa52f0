package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"courier-print-service/internal/domain"
)

var composeTime = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

func sampleRecord() domain.PackageRecord {
	return domain.PackageRecord{
		Code:             "PKG-AB12-20240101",
		ReceiverName:     "Jane Doe",
		ReceiverPhone:    "+254700000001",
		RouteDescription: "Nairobi to Mombasa",
		PaymentStatus:    domain.PaymentNotPaid,
		AgentName:        "Otieno",
	}
}

func TestCleanLocation(t *testing.T) {
	cases := []struct {
		route    string
		delivery string
		want     string
	}{
		{"Nairobi to Westlands Office", "", "WESTLANDS OFFICE"},
		{"CBD", "House 5, Ngong Rd", "HOUSE 5, NGONG RD"},
		{"Nairobi -> Mombasa", "", "MOMBASA"},
		{"Nairobi → Kisumu CBD", "", "KISUMU CBD"},
		{"TOWN", "", "TOWN"},
		{"  spaced   out  ", "", "SPACED OUT"},
		{"Depot #4 (rear gate!)", "", "DEPOT 4 REAR GATE"},
		{"", "", ""},
	}

	for _, tc := range cases {
		got := cleanLocation(tc.route, tc.delivery)
		if got != tc.want {
			t.Errorf("cleanLocation(%q, %q) = %q, want %q", tc.route, tc.delivery, got, tc.want)
		}
	}
}

// Identical inputs must produce byte-identical output.
func TestComposeReceiptDeterministic(t *testing.T) {
	record := sampleRecord()
	qr := &domain.QRResolution{Payload: "https://track.sendy.app/p/" + record.Code, Source: domain.QRSourceFallback}
	opts := domain.PrintOptions{IncludeQR: true}

	first, err := ComposeReceipt(record, qr, opts, composeTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComposeReceipt(record, qr, opts, composeTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("two composes of identical inputs differ")
	}
}

func TestComposeReceiptBody(t *testing.T) {
	data, err := ComposeReceipt(sampleRecord(), nil, domain.PrintOptions{}, composeTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"PARCEL RECEIPT",
		"PKG-AB12-20240101",
		"TO: JANE DOE",
		"PHONE: +254700000001",
		"LOCATION: MOMBASA",
		"AGENT: Otieno",
		"PAYMENT: NOT PAID",
		"DATE: 01 Jan 2024 09:30",
		"THANK YOU FOR SHIPPING WITH US",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if !bytes.HasSuffix(data, []byte{0x1D, 'V', 'A', 0x00}) {
		t.Error("output does not end with a paper cut")
	}
}

func TestComposeReceiptOptionalFieldsOmitted(t *testing.T) {
	record := domain.PackageRecord{
		Code:          "PKG-1",
		ReceiverName:  "Ann",
		PaymentStatus: domain.PaymentPaid,
	}

	data, err := ComposeReceipt(record, nil, domain.PrintOptions{}, composeTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	for _, absent := range []string{"PHONE:", "LOCATION:", "AGENT:", "WEIGHT:", "SIZE:", "NOTE:"} {
		if strings.Contains(out, absent) {
			t.Errorf("output contains %q for a record without that field", absent)
		}
	}
}

func TestComposeReceiptQRBlockIsBare(t *testing.T) {
	record := sampleRecord()
	qr := &domain.QRResolution{Payload: "QRPAYLOAD", Source: domain.QRSourceOptimized}

	data, err := ComposeReceipt(record, qr, domain.PrintOptions{IncludeQR: true}, composeTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "QRPAYLOAD") {
		t.Fatal("qr payload missing from the stream")
	}
	// No caption text around the symbol, only the command group and padding.
	if strings.Contains(strings.ToUpper(out), "SCAN") {
		t.Fatal("qr block must not carry caption text")
	}

	withoutQR, err := ComposeReceipt(record, nil, domain.PrintOptions{}, composeTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(withoutQR), "QRPAYLOAD") {
		t.Fatal("qr payload present without a resolution")
	}
}

func TestComposeReceiptBannerPerPrintType(t *testing.T) {
	for printType, banner := range map[domain.PrintType]string{
		domain.PrintReceipt: "PARCEL RECEIPT",
		domain.PrintLabel:   "PARCEL LABEL",
		domain.PrintInvoice: "PARCEL INVOICE",
	} {
		data, err := ComposeReceipt(sampleRecord(), nil, domain.PrintOptions{PrintType: printType}, composeTime)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(data), banner) {
			t.Errorf("print type %q missing banner %q", printType, banner)
		}
	}
}

func TestComposeReceiptOversizedQRPayload(t *testing.T) {
	qr := &domain.QRResolution{Payload: strings.Repeat("x", 5000), Source: domain.QRSourceGeneric}

	_, err := ComposeReceipt(sampleRecord(), qr, domain.PrintOptions{IncludeQR: true, LabelSize: domain.LabelLarge}, composeTime)
	if domain.CodeOf(err) != domain.CodeEncoding {
		t.Fatalf("code = %q, want %q", domain.CodeOf(err), domain.CodeEncoding)
	}

	var pe *domain.PrintError
	if !errors.As(err, &pe) {
		t.Fatal("encoding failures must be typed PrintErrors")
	}
}
