package labels

import (
	"bytes"
	"fmt"
	"html/template"

	"nexus-asset-manager/internal/domain"
)

const (
	sheetQRSize  = 80
	singleQRSize = 160
)

type labelView struct {
	QR     template.HTML
	Name   string
	ID     string
	Serial string
}

var sheetTemplate = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Bulk Asset Labels</title>
    <style>
      @page { margin: 0.5cm; }
      body { font-family: sans-serif; padding: 20px; background: white; }
      .print-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(250px, 1fr)); gap: 15px; }
      .label-card { border: 2px solid #000; border-radius: 8px; padding: 12px; display: flex; align-items: center; gap: 12px; page-break-inside: avoid; break-inside: avoid; background: white; height: 110px; box-sizing: border-box; }
      .qr-section { width: 80px; height: 80px; flex-shrink: 0; display: flex; align-items: center; justify-content: center; }
      .qr-section svg { width: 80px !important; height: 80px !important; display: block; }
      .info-section { flex: 1; min-width: 0; display: flex; flex-direction: column; justify-content: center; }
      h2 { font-size: 14px; margin: 0 0 6px 0; font-weight: bold; white-space: nowrap; overflow: hidden; text-overflow: ellipsis; color: #000; }
      .tag { font-family: monospace; font-size: 12px; font-weight: bold; background: #eee; padding: 2px 6px; margin-bottom: 4px; display: inline-block; border: 1px solid #ccc; color: #000; }
      .meta { font-size: 11px; color: #444; white-space: nowrap; overflow: hidden; text-overflow: ellipsis; }
      @media print { body { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }
    </style>
  </head>
  <body>
    <div class="print-grid">
{{- range .}}
      <div class="label-card">
        <div class="qr-section">{{.QR}}</div>
        <div class="info-section">
          <h2>{{.Name}}</h2>
          <div><span class="tag">{{.ID}}</span></div>
          <div class="meta">SN: {{.Serial}}</div>
        </div>
      </div>
{{- end}}
    </div>
    <script>
      window.onload = function() {
        window.focus();
        setTimeout(function() { window.print(); }, 500);
      };
    </script>
  </body>
</html>
`))

var singleTemplate = template.Must(template.New("single").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Asset Label - {{.ID}}</title>
    <style>
      @page { margin: 0; size: auto; }
      body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; display: flex; align-items: center; justify-content: center; min-height: 100vh; margin: 0; background: #fff; }
      .label-container { border: 2px solid #000; border-radius: 8px; width: 320px; padding: 24px; text-align: center; box-sizing: border-box; }
      .qr-wrapper { margin-bottom: 16px; display: flex; justify-content: center; }
      svg { width: 160px !important; height: 160px !important; display: block; }
      h2 { font-size: 20px; margin: 0 0 8px 0; font-weight: 700; color: #000; line-height: 1.2; }
      .tag { display: inline-block; background: #f0f0f0; border: 1px solid #ccc; padding: 4px 12px; border-radius: 4px; font-family: 'Courier New', monospace; font-size: 16px; font-weight: 700; margin-bottom: 8px; color: #000; }
      .meta { font-size: 14px; color: #444; }
      @media print { body { margin: 0; -webkit-print-color-adjust: exact; } .label-container { page-break-inside: avoid; } }
    </style>
  </head>
  <body>
    <div class="label-container">
      <div class="qr-wrapper">{{.QR}}</div>
      <h2>{{.Name}}</h2>
      <div class="tag">{{.ID}}</div>
      <div class="meta">SN: {{.Serial}}</div>
    </div>
    <script>
      window.onload = function() {
        window.focus();
        setTimeout(function() { window.print(); }, 500);
      };
    </script>
  </body>
</html>
`))

// ComposeSheet renders one label card per asset, in order. The QR payload is
// the asset id.
func ComposeSheet(assets []domain.Asset) ([]byte, error) {
	views := make([]labelView, 0, len(assets))
	for _, a := range assets {
		v, err := newLabelView(a, LevelMedium, sheetQRSize)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	var buf bytes.Buffer
	if err := sheetTemplate.Execute(&buf, views); err != nil {
		return nil, fmt.Errorf("failed to render label sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// ComposeSingle renders one large label with high error correction.
func ComposeSingle(asset domain.Asset) ([]byte, error) {
	v, err := newLabelView(asset, LevelHigh, singleQRSize)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := singleTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("failed to render label: %w", err)
	}
	return buf.Bytes(), nil
}

func newLabelView(a domain.Asset, level Level, size int) (labelView, error) {
	qr, err := QRSVG(a.ID, level, size)
	if err != nil {
		return labelView{}, fmt.Errorf("asset %s: %w", a.ID, err)
	}
	return labelView{QR: qr, Name: a.Name, ID: a.ID, Serial: a.SerialNumber}, nil
}
