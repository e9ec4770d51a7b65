package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"lg/coach-api/internal/coach"
	"lg/coach-api/internal/logger"
)

const (
	sheetPlan       = "Plan"
	sheetTrajectory = "Trayectoria"
)

// buildPlanWorkbook lays a plan out as two sheets: a label/value summary and
// the week-by-week trajectory.
func buildPlanWorkbook(p coach.Profile, plan coach.Plan) (*excelize.File, error) {
	f := excelize.NewFile()

	planIdx, err := f.NewSheet(sheetPlan)
	if err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(sheetTrajectory); err != nil {
		f.Close()
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(planIdx)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#34d399"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	rows := [][2]any{
		{"Modo", plan.Mode.Name},
		{"Peso actual (kg)", p.WeightKG},
		{"Peso objetivo (kg)", p.TargetWeightKG},
		{"BMR (kcal)", plan.Targets.BMR},
		{"TDEE (kcal)", plan.Targets.TDEE},
		{"IMC", plan.Targets.BMI},
		{"Categoría IMC", string(plan.Targets.BMICategory)},
		{"Calorías diarias", plan.Projection.DailyCalories},
		{"Ritmo semanal (kg)", plan.Projection.WeeklyRate},
		{"Semanas", plan.Projection.Weeks},
		{"Meses", plan.Projection.Months},
		{"Fecha objetivo", plan.Projection.TargetDate},
		{"Dieta", string(plan.Macros.DietType)},
		{"Proteína (g)", plan.Macros.ProteinG},
		{"Grasas (g)", plan.Macros.FatG},
		{"Carbohidratos (g)", plan.Macros.CarbsG},
		{"Kcal de macros", plan.Macros.KcalTarget},
		{"Agua (L)", plan.WaterLiters},
	}
	for i, w := range plan.Projection.Warnings {
		rows = append(rows, [2]any{fmt.Sprintf("Aviso %d", i+1), w})
	}

	f.SetCellValue(sheetPlan, "A1", "Concepto")
	f.SetCellValue(sheetPlan, "B1", "Valor")
	f.SetCellStyle(sheetPlan, "A1", "B1", headerStyle)
	f.SetColWidth(sheetPlan, "A", "A", 22)
	f.SetColWidth(sheetPlan, "B", "B", 40)
	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheetPlan, fmt.Sprintf("A%d", r), row[0])
		f.SetCellValue(sheetPlan, fmt.Sprintf("B%d", r), row[1])
	}

	f.SetCellValue(sheetTrajectory, "A1", "Semana")
	f.SetCellValue(sheetTrajectory, "B1", "Fecha")
	f.SetCellValue(sheetTrajectory, "C1", "Peso (kg)")
	f.SetCellStyle(sheetTrajectory, "A1", "C1", headerStyle)
	f.SetColWidth(sheetTrajectory, "B", "B", 12)
	for i, pt := range plan.Trajectory {
		r := i + 2
		f.SetCellValue(sheetTrajectory, fmt.Sprintf("A%d", r), pt.Week)
		f.SetCellValue(sheetTrajectory, fmt.Sprintf("B%d", r), pt.Date)
		f.SetCellValue(sheetTrajectory, fmt.Sprintf("C%d", r), pt.WeightKG)
	}

	return f, nil
}

// exportPlan streams the caller's plan as an .xlsx workbook.
// GET /api/plan/export.xlsx?mode= (mode optional).
func (h *Handler) exportPlan(c *gin.Context) {
	rec, p, ok := h.loadPlanProfile(c)
	if !ok {
		return
	}
	plan := coach.BuildPlan(p, planMode(c, rec), h.now())

	f, err := buildPlanWorkbook(p, plan)
	if err != nil {
		logger.Error("[exportPlan] build workbook failed", zap.Int("user_id", rec.UserID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to build export")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("[exportPlan] write workbook failed", zap.Int("user_id", rec.UserID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to build export")
		return
	}

	filename := fmt.Sprintf("plan-%s.xlsx", h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
