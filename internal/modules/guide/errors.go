package guide

// Validation messages mirror exactly what the application form shows.
const (
	msgContactRequired     = "Email address or phone number is required."
	msgInvalidEmail        = "Invalid email address format."
	msgInvalidPhone        = "Invalid phone number format."
	msgNameRequired        = "Full name is required."
	msgLanguageRequired    = "Languages spoken is required."
	msgPriceRequired       = "Price range is required."
	msgInvalidPrice        = "Invalid price range format. Use currency symbol (e.g., IDR 100000 or $50 - $100)."
	msgDescriptionRequired = "Description is required."
	msgCVRequired          = "CV (PDF) is required."
	msgCVEmptyName         = "No selected CV file."
	msgCVNotPDF            = "Only PDF files are allowed for CV."
)
