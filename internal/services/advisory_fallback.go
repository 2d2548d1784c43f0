package services

import "github.com/marcela981/Somos-Server/internal/models"

// Canned responses served when the generative-model call fails. Static
// constants: a fallback is never recomputed per call. Selection is keyed by
// the intent enum rather than by scanning the prompt text, which keeps the
// per-intent content deterministic.

const fallbackWorkoutJSON = `{
  "weekPlan": [
    {"day": "Lunes", "focus": "Cuerpo completo", "exercises": [
      {"name": "Sentadillas", "sets": 3, "reps": "12", "rest": "60s", "equipment": "ninguno", "alternative": "Sentadilla en silla"},
      {"name": "Flexiones", "sets": 3, "reps": "10", "rest": "60s", "equipment": "ninguno", "alternative": "Flexiones con rodillas"},
      {"name": "Plancha", "sets": 3, "reps": "30s", "rest": "45s", "equipment": "ninguno", "alternative": "Plancha con rodillas"}
    ]},
    {"day": "Miércoles", "focus": "Tren inferior", "exercises": [
      {"name": "Zancadas", "sets": 3, "reps": "10 por pierna", "rest": "60s", "equipment": "ninguno", "alternative": "Zancadas estáticas"},
      {"name": "Puente de glúteos", "sets": 3, "reps": "15", "rest": "45s", "equipment": "ninguno", "alternative": "Puente a una pierna"}
    ]},
    {"day": "Viernes", "focus": "Tren superior y core", "exercises": [
      {"name": "Fondos en silla", "sets": 3, "reps": "10", "rest": "60s", "equipment": "silla", "alternative": "Flexiones inclinadas"},
      {"name": "Superman", "sets": 3, "reps": "12", "rest": "45s", "equipment": "ninguno", "alternative": "Extensión alterna"}
    ]}
  ],
  "tips": ["Calienta 5-10 minutos antes de empezar", "Prioriza la técnica sobre el peso", "Descansa al menos un día entre sesiones"],
  "progression": "Aumenta una serie o dos repeticiones por ejercicio cada dos semanas."
}`

const fallbackNutritionJSON = `{
  "dailyCalories": 2000,
  "macros": {"protein": "150g (30%)", "carbs": "200g (40%)", "fat": "67g (30%)"},
  "mealSuggestions": [
    {"meal": "Desayuno", "foods": ["Avena con fruta", "Yogur natural", "Café o té sin azúcar"], "calories": 450},
    {"meal": "Almuerzo", "foods": ["Pechuga de pollo a la plancha", "Arroz integral", "Ensalada verde"], "calories": 650},
    {"meal": "Cena", "foods": ["Pescado al horno", "Verduras salteadas", "Batata asada"], "calories": 550},
    {"meal": "Snack", "foods": ["Puñado de frutos secos", "Una fruta"], "calories": 350}
  ],
  "tips": ["Prioriza alimentos sin procesar", "Incluye proteína en cada comida", "Planifica tus comidas con antelación"],
  "hydration": "Bebe al menos 2 litros de agua al día, más en días de entrenamiento."
}`

const fallbackEncouragement = `Sigue adelante: la constancia vale más que la perfección. Registra tu próxima sesión y cada pequeño avance te acercará a tu objetivo.`

// FallbackText returns the canned response for an intent. Workout and
// nutrition get full JSON plans; everything else gets a one-line
// encouragement so the caller always receives usable text.
func FallbackText(intent models.AdvisoryIntent) string {
	switch intent {
	case models.IntentWorkout:
		return fallbackWorkoutJSON
	case models.IntentNutrition:
		return fallbackNutritionJSON
	default:
		return fallbackEncouragement
	}
}
