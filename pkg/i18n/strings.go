package i18n

var translations = map[Locale]map[string]string{
	LocaleEN: {
		"nav.checking":           "Checking",
		"nav.dashboard":          "Dashboard",
		"nav.pricing":            "Pricing",
		"nav.login":              "Log in",
		"hero.title":             "Recruiting Logic,",
		"hero.subtitle":          "Decompiled.",
		"hero.desc":              "Reverse engineer the hiring process. Analyze your resume against ATS algorithms and optimize with AI-driven insights.",
		"hero.cta":               "Run Diagnostics",
		"hero.dashboard":         "Open Dashboard",
		"features.ats":           "Heuristic analysis engine that decodes PDF structures to verify machine-readability.",
		"features.layout":        "Server-side rendering to generate standardized documents.",
		"features.ai":            "Integrated LLM analysis for deep semantic evaluation of professional experience.",
		"checker.title":          "ATS Meter",
		"checker.desc":           "Upload your CV as PDF and get an instant compatibility analysis.",
		"checker.formats":        "Accepted formats: PDF (max 5MB)",
		"checker.ai":             "Enable AI analysis",
		"checker.analyze":        "Analyze ATS score",
		"checker.analyze_ai":     "Analyze with AI",
		"checker.results":        "Analysis results",
		"checker.sections":       "Detected sections",
		"checker.issues":         "Areas to improve",
		"checker.improvements":   "Suggestions",
		"checker.summary":        "Summary",
		"wizard.step.personal":   "Personal",
		"wizard.step.education":  "Education",
		"wizard.step.experience": "Experience",
		"wizard.step.skills":     "Skills",
		"wizard.step.preview":    "Preview",
		"wizard.next":            "Next",
		"wizard.previous":        "Back",
		"preview.experience":     "Experience",
		"preview.education":      "Education",
		"preview.certifications": "Certifications",
		"preview.skills":         "Skills",
		"preview.languages":      "Languages",
		"preview.interests":      "Interests",
		"preview.summary":        "Profile",
		"pricing.title":          "Pricing",
		"pricing.free":           "Free",
		"pricing.pro":            "Pro",
		"login.title":            "Sign in",
		"login.email":            "E-mail",
		"login.password":         "Password",
		"login.submit":           "Enter",
		"checker.score":          "ATS score",
		"checker.strengths":      "Strengths",
		"checker.keywords":       "Detected keywords",
		"checker.raw":            "Full report",
		"wizard.add":             "Add",
		"wizard.remove":          "Remove",
		"wizard.export":          "Export PDF",
		"wizard.summary_budget":  "characters",
		"field.full_name":        "Full name",
		"field.title":            "Professional title",
		"field.email":            "E-mail",
		"field.phone":            "Phone",
		"field.location":         "Location",
		"field.website":          "Website",
		"field.github":           "GitHub",
		"field.summary":          "Professional summary",
		"field.skills":           "Skills",
		"field.languages":        "Languages",
		"field.interests":        "Interests",
		"field.certifications":   "Certifications",
		"entry.institution":      "Institution",
		"entry.degree":           "Degree",
		"entry.company":          "Company",
		"entry.position":         "Position",
		"entry.location":         "Location",
		"entry.start_date":       "Start",
		"entry.end_date":         "End",
		"entry.description":      "Description",
		"entry.name":             "Name",
		"entry.issuer":           "Issuer",
		"entry.date":             "Date",
	},
	LocaleES: {
		"nav.checking":           "Verificador",
		"nav.dashboard":          "Panel de Control",
		"nav.pricing":            "Precios",
		"nav.login":              "Ingresar",
		"hero.title":             "Lógica de Reclutamiento,",
		"hero.subtitle":          "Descompilada.",
		"hero.desc":              "Realiza ingeniería inversa a tu proceso de contratación. Analiza tu CV contra algoritmos ATS y optimízalo con IA.",
		"hero.cta":               "Ejecutar Diagnóstico",
		"hero.dashboard":         "Abrir Panel",
		"features.ats":           "Motor de análisis heurístico que decodifica estructuras PDF para verificar legibilidad por máquina.",
		"features.layout":        "Renderizado del lado del servidor para generar documentos estandarizados.",
		"features.ai":            "Análisis LLM integrado para evaluación semántica profunda de experiencia profesional.",
		"checker.title":          "Medidor ATS",
		"checker.desc":           "Sube tu CV en PDF y obtén un análisis de compatibilidad instantáneo.",
		"checker.formats":        "Formatos aceptados: PDF (Máx 5MB)",
		"checker.ai":             "Activar Análisis con IA",
		"checker.analyze":        "Analizar ATS Score",
		"checker.analyze_ai":     "Analizar con IA",
		"checker.results":        "Resultados del Análisis",
		"checker.sections":       "Secciones Detectadas",
		"checker.issues":         "Áreas de Mejora",
		"checker.improvements":   "Sugerencias",
		"checker.summary":        "Resumen",
		"wizard.step.personal":   "Datos personales",
		"wizard.step.education":  "Educación",
		"wizard.step.experience": "Experiencia",
		"wizard.step.skills":     "Habilidades",
		"wizard.step.preview":    "Vista previa",
		"wizard.next":            "Siguiente",
		"wizard.previous":        "Atrás",
		"preview.experience":     "Experiencia",
		"preview.education":      "Educación",
		"preview.certifications": "Certificaciones",
		"preview.skills":         "Habilidades",
		"preview.languages":      "Idiomas",
		"preview.interests":      "Intereses",
		"preview.summary":        "Perfil",
		"pricing.title":          "Precios",
		"pricing.free":           "Gratis",
		"pricing.pro":            "Pro",
		"login.title":            "Iniciar sesión",
		"login.email":            "Correo",
		"login.password":         "Contraseña",
		"login.submit":           "Entrar",
		"checker.score":          "Puntaje ATS",
		"checker.strengths":      "Fortalezas",
		"checker.keywords":       "Palabras clave detectadas",
		"checker.raw":            "Reporte completo",
		"wizard.add":             "Agregar",
		"wizard.remove":          "Eliminar",
		"wizard.export":          "Exportar PDF",
		"wizard.summary_budget":  "caracteres",
		"field.full_name":        "Nombre completo",
		"field.title":            "Título profesional",
		"field.email":            "Correo",
		"field.phone":            "Teléfono",
		"field.location":         "Ubicación",
		"field.website":          "Sitio web",
		"field.github":           "GitHub",
		"field.summary":          "Resumen profesional",
		"field.skills":           "Habilidades",
		"field.languages":        "Idiomas",
		"field.interests":        "Intereses",
		"field.certifications":   "Certificaciones",
		"entry.institution":      "Institución",
		"entry.degree":           "Título",
		"entry.company":          "Empresa",
		"entry.position":         "Cargo",
		"entry.location":         "Ubicación",
		"entry.start_date":       "Inicio",
		"entry.end_date":         "Fin",
		"entry.description":      "Descripción",
		"entry.name":             "Nombre",
		"entry.issuer":           "Emisor",
		"entry.date":             "Fecha",
	},
	LocaleRU: {
		"nav.checking":       "Проверка",
		"nav.dashboard":      "Панель",
		"hero.cta":           "Запустить диагностику",
		"preview.experience": "Опыт работы",
		"preview.education":  "Образование",
		"preview.skills":     "Навыки",
		"preview.languages":  "Языки",
	},
}
