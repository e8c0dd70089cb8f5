package i18n

var messagesEN = map[string]string{
	"site.name": "Serbian Association",

	"nav.home":      "Home",
	"nav.news":      "News",
	"nav.gallery":   "Gallery",
	"nav.stories":   "Serbian Story",
	"nav.contact":   "Contact",
	"nav.login":     "Log in",
	"nav.logout":    "Log out",
	"nav.register":  "Become a member",
	"nav.dashboard": "My page",
	"nav.admin":     "Administration",

	"home.latest_news": "Latest news",
	"home.story":       "From our heritage",
	"read_more":        "Read more",
	"back":             "Back",

	"news.title":     "News",
	"news.empty":     "No news yet.",
	"gallery.title":  "Gallery",
	"gallery.empty":  "No albums yet.",
	"stories.title":  "Serbian Story",
	"stories.empty":  "No stories yet.",
	"stories.source": "Source",

	"contact.title":             "Contact",
	"contact.info":              "Contact information",
	"contact.name":              "Name",
	"contact.email":             "Email",
	"contact.topic":             "Topic",
	"contact.message":           "Message",
	"contact.send":              "Send message",
	"contact.sent":              "Thank you! Your message has been sent.",
	"contact.failed":            "Failed to send message.",
	"contact.topic.member":      "Membership",
	"contact.topic.finance":     "Finance",
	"contact.topic.sponsorship": "Sponsorship",
	"contact.topic.other":       "Other",
	"contact.address":           "Address",
	"contact.phone":             "Phone",
	"contact.bank":              "Bank account",
	"contact.org_number":        "Registration number",
	"contact.vat":               "VAT number",

	"login.title":      "Log in",
	"login.username":   "Username or email",
	"login.password":   "Password",
	"login.submit":     "Log in",
	"login.forgot":     "Forgot password?",
	"login.failed":     "Incorrect username or password.",
	"login.no_account": "Not a member yet?",
	"login.welcome":    "Welcome, %s!",

	"register.title":            "Become a member",
	"register.username":         "Username",
	"register.full_name":        "Full name",
	"register.email":            "Email",
	"register.phone":            "Phone",
	"register.year_of_birth":    "Year of birth",
	"register.address":          "Address",
	"register.password":         "Password",
	"register.confirm_password": "Confirm password",
	"register.submit":           "Register",
	"register.done":             "Registration complete. Check your email to verify your account.",
	"register.failed":           "Registration failed.",
	"register.parent":           "Parent or guardian (for members under 18)",
	"register.parent_name":      "Parent name",
	"register.parent_email":     "Parent email",
	"register.parent_phone":     "Parent phone",

	"forgot.title":  "Forgot password",
	"forgot.intro":  "Enter your email and we will send you a link to reset your password.",
	"forgot.submit": "Send reset link",
	"forgot.sent":   "If an account exists for %s, a reset link has been sent.",
	"forgot.failed": "Failed to send reset email.",

	"reset.title":        "Reset password",
	"reset.new_password": "New password",
	"reset.confirm":      "Confirm new password",
	"reset.submit":       "Reset password",
	"reset.done":         "Your password has been reset. You can now log in.",
	"reset.failed":       "Failed to reset password. The link may have expired.",
	"reset.invalid_link": "Invalid reset link.",

	"verify.title":    "Email verification",
	"verify.success":  "Your email has been verified.",
	"verify.failed":   "Verification failed. The link is invalid or has expired.",
	"verify.missing":  "No verification token provided.",
	"verify.go_login": "Go to login",

	"dashboard.title":             "My page",
	"dashboard.profile":           "Profile",
	"dashboard.save":              "Save",
	"dashboard.saved":             "Profile updated.",
	"dashboard.save_failed":       "Failed to update profile.",
	"dashboard.invoices":          "My invoices",
	"dashboard.no_invoices":       "You have no invoices.",
	"dashboard.password":          "Change password",
	"dashboard.current_password":  "Current password",
	"dashboard.password_changed":  "Password changed.",
	"dashboard.password_failed":   "Failed to change password.",
	"dashboard.cancel_membership": "Cancel membership",
	"dashboard.cancel_reason":     "Reason (optional)",
	"dashboard.cancel_confirm":    "Are you sure you want to cancel your membership?",
	"dashboard.cancelled":         "Your membership has been cancelled.",
	"dashboard.cancel_failed":     "Failed to cancel membership.",

	"family.title":          "Family members",
	"family.add":            "Add family member",
	"family.edit":           "Edit family member",
	"family.empty":          "No family members linked to your account.",
	"family.under_age":      "Only members aged 18 or older can add family members.",
	"family.relationship":   "Relationship",
	"family.age":            "Age",
	"family.remove":         "Remove",
	"family.added":          "Family member added.",
	"family.updated":        "Family member updated.",
	"family.removed":        "Family member removed.",
	"family.failed":         "Failed to save family member.",
	"family.load_failed":    "Failed to load family members.",
	"family.primary":        "Primary account",
	"family.delete_account": "Also delete the member's account",
	"family.rel.child":      "Child",
	"family.rel.spouse":     "Spouse",
	"family.rel.friend":     "Friend",
	"family.rel.other":      "Other",

	"invoice.amount":          "Amount",
	"invoice.currency":        "Currency",
	"invoice.due":             "Due date",
	"invoice.status":          "Status",
	"invoice.paid":            "Paid",
	"invoice.unpaid":          "Unpaid",
	"invoice.description":     "Description",
	"invoice.file":            "File",
	"invoice.payment_date":    "Payment date",
	"invoice.download":        "Download",
	"invoice.download_failed": "Could not download the invoice file.",

	"admin.title":               "Administration",
	"admin.members":             "Members",
	"admin.invoices":            "Invoices",
	"admin.families":            "Families",
	"admin.stats.total_members": "Total members",
	"admin.stats.paid":          "Paid invoices",
	"admin.stats.unpaid":        "Unpaid invoices",
	"admin.stats.revenue":       "Total revenue",
	"admin.stats.overdue":       "Overdue invoices",

	"members.search":                "Search by name, email, username or phone",
	"members.filter.invoice_status": "Invoice status",
	"members.filter.has_family":     "Family members",
	"members.filter.all":            "All",
	"members.filter.paid":           "All paid",
	"members.filter.unpaid":         "Has unpaid",
	"members.filter.none":           "No invoices",
	"members.filter.yes":            "Has family",
	"members.filter.no":             "No family",
	"members.filter.apply":          "Filter",
	"members.filter.clear":          "Clear filters",
	"members.export":                "Export",
	"members.empty":                 "No members match.",
	"members.details":               "Details",
	"members.suspend":               "Suspend",
	"members.delete":                "Delete",
	"members.deleted":               "Member deleted.",
	"members.delete_failed":         "Failed to delete member.",
	"members.suspended":             "Member suspended.",
	"members.suspend_failed":        "Failed to suspend member.",
	"members.delete_confirm":        "Are you sure you want to delete %s?",
	"members.details_failed":        "Failed to load user details.",
	"members.export_failed":         "Failed to export members.",
	"members.col.name":              "Name",
	"members.col.email":             "Email",
	"members.col.phone":             "Phone",
	"members.col.group":             "Training group",
	"members.col.role":              "Role",

	"invoices.create":                "Create invoice",
	"invoices.edit":                  "Edit invoice",
	"invoices.filter.invoice":        "Invoice",
	"invoices.filter.status":         "Payment status",
	"invoices.filter.group":          "Training group",
	"invoices.filter.all_invoices":   "All invoices",
	"invoices.filter.all_groups":     "All groups",
	"invoices.mark_paid":             "Mark as paid",
	"invoices.delete":                "Delete",
	"invoices.upload":                "Upload file",
	"invoices.created":               "Invoice created.",
	"invoices.updated":               "Invoice updated.",
	"invoices.paid_ok":               "Invoice marked as paid.",
	"invoices.deleted":               "Invoice deleted.",
	"invoices.uploaded":              "File uploaded.",
	"invoices.failed":                "Failed to save invoice.",
	"invoices.load_failed":           "Failed to load invoices.",
	"invoices.file_type":             "Only PDF, JPG and PNG files up to 10 MB are allowed.",
	"invoices.select_all":            "Select all",
	"invoices.select_without_unpaid": "Select members without unpaid invoices",
	"invoices.clear_selection":       "Clear selection",
	"invoices.members":               "Members",
	"invoices.member_search":         "Search members",
	"invoices.no_members":            "No members",
	"invoices.members_locked":        "Members cannot be changed",
	"invoices.unknown_user":          "Unknown User",
	"invoices.filtered_members":      "Filtered members",
	"invoices.export_excel":          "Export to Excel",
	"invoices.empty":                 "No invoices match.",

	"pagination.showing": "Showing %d to %d of %d",
	"pagination.prev":    "Previous",
	"pagination.next":    "Next",

	"error.generic":         "Something went wrong. Please try again.",
	"error.load":            "Failed to load data.",
	"error.required":        "Please fill in all required fields.",
	"error.session_expired": "Your session has expired. Please log in again.",
	"error.unavailable":     "The service is temporarily unavailable.",
	"error.forbidden":       "You do not have access to this page.",
	"error.not_found":       "Page not found.",

	"form.cancel": "Cancel",
	"form.save":   "Save",
}
