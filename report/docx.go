package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// DOCXEncoder builds a WordprocessingML document: bold centered title,
// date-range subtitle, 概要 table (header row + one data row, four equal
// columns) and a トップパフォーマー table with one row per performer.
// Overflowing cell content is left to Word to wrap.
type DOCXEncoder struct{}

func NewDOCXEncoder() *DOCXEncoder {
	return &DOCXEncoder{}
}

func (e *DOCXEncoder) Name() string        { return "DOCX" }
func (e *DOCXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}
func (e *DOCXEncoder) FileExtension() string { return ".docx" }

func (e *DOCXEncoder) Encode(cfg Config, data *Data) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	// Title
	title := doc.AddParagraph()
	title.Properties().SetAlignment(wml.ST_JcCenter)
	titleRun := title.AddRun()
	titleRun.Properties().SetBold(true)
	titleRun.Properties().SetSize(16 * measurement.Point)
	titleRun.AddText(fmt.Sprintf("%s - %sレポート", cfg.Type.Title(), periodLabel(cfg.Period)))

	// Date range subtitle
	subtitle := doc.AddParagraph()
	subtitle.Properties().SetAlignment(wml.ST_JcCenter)
	subtitleRun := subtitle.AddRun()
	subtitleRun.Properties().SetSize(11 * measurement.Point)
	subtitleRun.AddText(cfg.DateRangeLabel())

	e.addHeading(doc, "概要")
	e.addTable(doc,
		[]string{"総 CO2 削減量", "総発行ポイント", "総利用ポイント", "アクティブユーザー"},
		[][]string{{
			formatFloat(data.TotalCO2Reduction) + " kg",
			groupInt(data.TotalPointsIssued) + " pt",
			groupInt(data.TotalPointsRedeemed) + " pt",
			groupInt(data.ActiveUsers) + " 人",
		}},
	)

	e.addHeading(doc, "トップパフォーマー")
	performerRows := make([][]string, 0, len(data.TopPerformers))
	for _, p := range data.TopPerformers {
		performerRows = append(performerRows, []string{
			p.Name,
			p.Department,
			formatFloat(p.Reduction) + "%",
			strconv.Itoa(p.Points) + " pt",
		})
	}
	e.addTable(doc, []string{"氏名", "部署", "削減率 (%)", "ポイント"}, performerRows)

	e.addHeading(doc, "部署別統計")
	deptRows := make([][]string, 0, len(data.DepartmentStats))
	for _, d := range data.DepartmentStats {
		deptRows = append(deptRows, []string{
			d.Name,
			strconv.Itoa(d.Members) + "人",
			formatFloat(d.AvgReduction) + "%",
			groupInt(d.TotalPoints) + " pt",
		})
	}
	e.addTable(doc, []string{"部署名", "人数", "平均削減率 (%)", "総ポイント"}, deptRows)

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("docx pack: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *DOCXEncoder) addHeading(doc *document.Document, text string) {
	p := doc.AddParagraph()
	run := p.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(13 * measurement.Point)
	run.AddText(text)
}

// addTable appends a full-width table with equal-percentage columns,
// one bold header row and the given data rows.
func (e *DOCXEncoder) addTable(doc *document.Document, headers []string, rows [][]string) {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	borders := table.Properties().Borders()
	borders.SetAll(wml.ST_BorderSingle, color.Auto, measurement.Zero)

	colPercent := float64(100) / float64(len(headers))

	headerRow := table.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.Properties().SetWidthPercent(colPercent)
		run := cell.AddParagraph().AddRun()
		run.Properties().SetBold(true)
		run.AddText(h)
	}

	for _, row := range rows {
		tr := table.AddRow()
		for _, field := range row {
			cell := tr.AddCell()
			cell.Properties().SetWidthPercent(colPercent)
			cell.AddParagraph().AddRun().AddText(field)
		}
	}
}
