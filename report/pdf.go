package report

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// PDFEncoder renders the report as an A4 portrait PDF: centered title and
// date-range subtitle, then three four-column tables (summary, top
// performers, department stats).
type PDFEncoder struct{}

func NewPDFEncoder() *PDFEncoder {
	return &PDFEncoder{}
}

func (e *PDFEncoder) Name() string          { return "PDF" }
func (e *PDFEncoder) ContentType() string   { return "application/pdf" }
func (e *PDFEncoder) FileExtension() string { return ".pdf" }

func (e *PDFEncoder) Encode(cfg Config, data *Data) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(14, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s - %sレポート", cfg.Type.Title(), periodLabel(cfg.Period)), props.Text{
				Size:  20,
				Style: consts.Bold,
				Align: consts.Center,
				Color: darkGray,
			})
		})
	})

	// Date range subtitle
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(cfg.DateRangeLabel(), props.Text{
				Size:  12,
				Align: consts.Center,
				Color: mediumGray,
			})
		})
	})

	m.Row(6, func() {})

	e.sectionHeader(m, "概要", darkGray)
	m.TableList(
		[]string{"総 CO2 削減量", "総発行ポイント", "総利用ポイント", "アクティブユーザー"},
		[][]string{{
			formatFloat(data.TotalCO2Reduction) + " kg",
			groupInt(data.TotalPointsIssued) + " pt",
			groupInt(data.TotalPointsRedeemed) + " pt",
			groupInt(data.ActiveUsers) + " 人",
		}},
		tableProps(),
	)

	m.Row(6, func() {})

	e.sectionHeader(m, "トップパフォーマー", darkGray)
	performerRows := make([][]string, 0, len(data.TopPerformers))
	for _, p := range data.TopPerformers {
		performerRows = append(performerRows, []string{
			p.Name,
			p.Department,
			formatFloat(p.Reduction) + "%",
			strconv.Itoa(p.Points) + " pt",
		})
	}
	m.TableList([]string{"氏名", "部署", "削減率 (%)", "ポイント"}, performerRows, tableProps())

	m.Row(6, func() {})

	e.sectionHeader(m, "部署別統計", darkGray)
	deptRows := make([][]string, 0, len(data.DepartmentStats))
	for _, d := range data.DepartmentStats {
		deptRows = append(deptRows, []string{
			d.Name,
			strconv.Itoa(d.Members) + "人",
			formatFloat(d.AvgReduction) + "%",
			groupInt(d.TotalPoints) + " pt",
		})
	}
	m.TableList([]string{"部署名", "人数", "平均削減率 (%)", "総ポイント"}, deptRows, tableProps())

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFEncoder) sectionHeader(m pdf.Maroto, title string, c color.Color) {
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Size:  14,
				Style: consts.Bold,
				Color: c,
			})
		})
	})
}

func tableProps() props.TableList {
	return props.TableList{
		HeaderProp: props.TableListContent{
			Size:      9,
			Style:     consts.Bold,
			GridSizes: []uint{3, 3, 3, 3},
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{3, 3, 3, 3},
		},
		Align:              consts.Left,
		HeaderContentSpace: 1,
		Line:               true,
	}
}

func periodLabel(p Period) string {
	switch p {
	case PeriodMonthly:
		return "月次"
	case PeriodQuarterly:
		return "四半期"
	case PeriodYearly:
		return "年次"
	default:
		return string(p)
	}
}
