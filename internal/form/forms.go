package form

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// Contact topics offered on the contact page.
var ContactTopics = []string{"member", "finance", "sponsorship", "other"}

type LoginForm struct {
	Username string `form:"username" label:"Username" validate:"required"`
	Password string `form:"password" label:"Password" validate:"required"`
}

func ParseLogin(r *http.Request) LoginForm {
	return LoginForm{
		Username: Value(r, "username"),
		Password: r.FormValue("password"),
	}
}

type RegisterForm struct {
	Username        string `form:"username" label:"Username" validate:"required,min=3,max=50"`
	FullName        string `form:"full_name" label:"Full name" validate:"required"`
	Email           string `form:"email" label:"Email" validate:"required,email"`
	Phone           string `form:"phone" label:"Phone" validate:"omitempty,max=30"`
	YearOfBirth     string `form:"year_of_birth" label:"Year of birth" validate:"omitempty,year"`
	Address         string `form:"address" label:"Address"`
	Password        string `form:"password" label:"Password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" label:"Confirm password" validate:"required,eqfield=Password"`
	ParentName      string `form:"parent_name" label:"Parent name"`
	ParentEmail     string `form:"parent_email" label:"Parent email" validate:"omitempty,email"`
	ParentPhone     string `form:"parent_phone" label:"Parent phone"`
}

func ParseRegister(r *http.Request) RegisterForm {
	return RegisterForm{
		Username:        Value(r, "username"),
		FullName:        Value(r, "full_name"),
		Email:           Value(r, "email"),
		Phone:           Value(r, "phone"),
		YearOfBirth:     Value(r, "year_of_birth"),
		Address:         Value(r, "address"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		ParentName:      Value(r, "parent_name"),
		ParentEmail:     Value(r, "parent_email"),
		ParentPhone:     Value(r, "parent_phone"),
	}
}

// Registration converts the form to the backend payload.
func (f RegisterForm) Registration() model.Registration {
	return model.Registration{
		Username:    f.Username,
		Email:       f.Email,
		Password:    f.Password,
		FullName:    f.FullName,
		Phone:       f.Phone,
		YearOfBirth: f.YearOfBirth,
		Address:     f.Address,
		ParentName:  f.ParentName,
		ParentEmail: f.ParentEmail,
		ParentPhone: f.ParentPhone,
	}
}

type ForgotPasswordForm struct {
	Email string `form:"email" label:"Email" validate:"required,email"`
}

func ParseForgotPassword(r *http.Request) ForgotPasswordForm {
	return ForgotPasswordForm{Email: Value(r, "email")}
}

type ResetPasswordForm struct {
	Token           string `form:"token" label:"Reset token" validate:"required"`
	Password        string `form:"password" label:"Password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" label:"Confirm password" validate:"required,eqfield=Password"`
}

func ParseResetPassword(r *http.Request) ResetPasswordForm {
	return ResetPasswordForm{
		Token:           Value(r, "token"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
}

type ContactForm struct {
	Name    string `form:"name" label:"Name" validate:"required"`
	Email   string `form:"email" label:"Email" validate:"required,email"`
	Topic   string `form:"topic" label:"Topic" validate:"omitempty,oneof=member finance sponsorship other"`
	Message string `form:"message" label:"Message" validate:"required,max=5000"`
}

func ParseContact(r *http.Request) ContactForm {
	return ContactForm{
		Name:    Value(r, "name"),
		Email:   Value(r, "email"),
		Topic:   Value(r, "topic"),
		Message: Value(r, "message"),
	}
}

func (f ContactForm) ContactMessage() model.ContactMessage {
	return model.ContactMessage{Name: f.Name, Email: f.Email, Topic: f.Topic, Message: f.Message}
}

type ProfileForm struct {
	FullName    string `form:"full_name" label:"Full name" validate:"required"`
	Phone       string `form:"phone" label:"Phone" validate:"omitempty,max=30"`
	YearOfBirth string `form:"year_of_birth" label:"Year of birth" validate:"omitempty,year"`
	Address     string `form:"address" label:"Address"`
	ParentName  string `form:"parent_name" label:"Parent name"`
	ParentEmail string `form:"parent_email" label:"Parent email" validate:"omitempty,email"`
	ParentPhone string `form:"parent_phone" label:"Parent phone"`
}

func ParseProfile(r *http.Request) ProfileForm {
	return ProfileForm{
		FullName:    Value(r, "full_name"),
		Phone:       Value(r, "phone"),
		YearOfBirth: Value(r, "year_of_birth"),
		Address:     Value(r, "address"),
		ParentName:  Value(r, "parent_name"),
		ParentEmail: Value(r, "parent_email"),
		ParentPhone: Value(r, "parent_phone"),
	}
}

func (f ProfileForm) Update() model.UserUpdate {
	return model.UserUpdate{
		FullName:    f.FullName,
		Phone:       f.Phone,
		YearOfBirth: f.YearOfBirth,
		Address:     f.Address,
		ParentName:  f.ParentName,
		ParentEmail: f.ParentEmail,
		ParentPhone: f.ParentPhone,
	}
}

// ProfileFromUser prefills the profile form.
func ProfileFromUser(u model.User) ProfileForm {
	return ProfileForm{
		FullName:    u.FullName,
		Phone:       u.Phone,
		YearOfBirth: u.YearOfBirth,
		Address:     u.Address,
		ParentName:  u.ParentName,
		ParentEmail: u.ParentEmail,
		ParentPhone: u.ParentPhone,
	}
}

type PasswordForm struct {
	Current         string `form:"current_password" label:"Current password" validate:"required"`
	Password        string `form:"password" label:"Password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" label:"Confirm password" validate:"required,eqfield=Password"`
}

func ParsePassword(r *http.Request) PasswordForm {
	return PasswordForm{
		Current:         r.FormValue("current_password"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
}

// InvoiceForm is the admin create/edit invoice dialog. Amount stays a string
// so a rejected submission re-renders exactly what was typed.
type InvoiceForm struct {
	UserIDs       []string `form:"user_ids" label:"Members" validate:"min=1,dive,required"`
	Amount        string   `form:"amount" label:"Amount" validate:"required,amount"`
	Currency      string   `form:"currency" label:"Currency" validate:"omitempty,len=3,alpha"`
	DueDate       string   `form:"due_date" label:"Due date" validate:"required,datetime=2006-01-02"`
	Description   string   `form:"description" label:"Description" validate:"required"`
	TrainingGroup string   `form:"training_group" label:"Training group"`
	Status        string   `form:"status" label:"Status" validate:"omitempty,oneof=paid unpaid"`
	PaymentDate   string   `form:"payment_date" label:"Payment date" validate:"omitempty,datetime=2006-01-02"`
}

func ParseInvoice(r *http.Request) InvoiceForm {
	_ = r.ParseForm()
	f := InvoiceForm{
		Amount:        Value(r, "amount"),
		Currency:      strings.ToUpper(Value(r, "currency")),
		DueDate:       Value(r, "due_date"),
		Description:   Value(r, "description"),
		TrainingGroup: Value(r, "training_group"),
		Status:        Value(r, "status"),
		PaymentDate:   Value(r, "payment_date"),
	}
	f.Add(r.Form["user_ids"]...)
	return f
}

// Add selects ids on top of the current selection, skipping blanks and
// repeats.
func (f *InvoiceForm) Add(ids ...string) {
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" && !f.Selected(id) {
			f.UserIDs = append(f.UserIDs, id)
		}
	}
}

// Input converts a validated form to the backend payload. An unpaid invoice
// carries no payment date.
func (f InvoiceForm) Input() model.InvoiceInput {
	amount, _ := strconv.ParseFloat(strings.ReplaceAll(f.Amount, ",", "."), 64)
	currency := f.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}
	in := model.InvoiceInput{
		UserIDs:       f.UserIDs,
		Amount:        amount,
		Currency:      currency,
		DueDate:       f.DueDate,
		Description:   f.Description,
		TrainingGroup: f.TrainingGroup,
		Status:        f.Status,
		PaymentDate:   f.PaymentDate,
	}
	if in.Status != model.InvoicePaid {
		in.PaymentDate = ""
	}
	return in
}

// InvoiceFromModel prefills the edit dialog.
func InvoiceFromModel(inv model.Invoice) InvoiceForm {
	status := inv.Status
	if status == "" {
		status = model.InvoiceUnpaid
	}
	return InvoiceForm{
		UserIDs:       inv.Members(),
		Amount:        strconv.FormatFloat(inv.Amount, 'f', -1, 64),
		Currency:      inv.Currency,
		DueDate:       inv.DueDate,
		Description:   inv.Description,
		TrainingGroup: inv.TrainingGroup,
		Status:        status,
		PaymentDate:   inv.PaymentDate,
	}
}

// Selected reports whether id is among the chosen members.
func (f InvoiceForm) Selected(id string) bool {
	for _, v := range f.UserIDs {
		if v == id {
			return true
		}
	}
	return false
}
