package consts

// Customer-facing reply copy. The conversation service fills the format
// strings with pre-formatted rupee amounts.
const (
	WelcomeMessage = "Hello! Welcome to FinAgent. 👋\n\n" +
		"I can help you apply for a personal loan quickly and easily. " +
		"Just tell me how much you need and for how long!\n\n" +
		"For example: 'I need ₹5,00,000 for 36 months'"

	ApologyMessage = "I apologize, but there was an error processing your request. Please try again."

	ApprovedReplyFormat = "🎉 Great news! Your loan of ₹%s for %d months is APPROVED!\n\n" +
		"💰 Monthly EMI: ₹%s\n" +
		"📊 Interest Rate: %v%% p.a.\n\n" +
		"Would you like me to generate your official sanction letter now?"

	SanctionReplyFormat = "Perfect! Your sanction letter has been generated successfully! 🎉\n\n" +
		"📄 Loan ID: %s\n" +
		"💰 Approved Amount: ₹%s\n" +
		"📅 Tenure: %d months\n" +
		"💳 Monthly EMI: ₹%s\n\n" +
		"Your sanction letter is valid for %d days. Please visit any FinAgent branch with:\n" +
		"• Original ID proof (Aadhaar/PAN/Passport)\n" +
		"• Bank statements (last 6 months)\n" +
		"• Salary slips (last 3 months)\n" +
		"• This sanction letter\n\n" +
		"We'll verify your documents and disburse the loan within 24 hours. Congratulations! 🎊"
)

// Notification event name published alongside sanction letters.
const SanctionIssuedNotificationEvent = "SANCTION_LETTER_ISSUED"
