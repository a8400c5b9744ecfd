package handler

// Response shapes shared by the admin and customer surfaces. Entities are
// re-mapped rather than marshalled straight from the models so password
// hashes never reach a response and date columns render as YYYY-MM-DD.

import (
	"github.com/iliyamo/car-rental/internal/model"
)

const dateLayout = "2006-01-02"

type branchResp struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func toBranchResp(b model.Branch) branchResp {
	return branchResp{ID: b.ID, Name: b.Name, Phone: b.Phone, Address: b.Address}
}

type packageResp struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DailyCost   float64 `json:"dailyCost"`
}

func toPackageResp(p model.InsurancePackage) packageResp {
	return packageResp{ID: p.ID, Name: p.Name, Description: p.Description, DailyCost: p.DailyCost}
}

type customerResp struct {
	ID               uint64 `json:"id"`
	Username         string `json:"username"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DriverLicenseNo  string `json:"driverLicenseNo"`
	CreditCardNumber string `json:"creditCardNumber"`
	ExpDate          string `json:"expDate"`
}

func toCustomerResp(c model.Customer) customerResp {
	return customerResp{
		ID:               c.ID,
		Username:         c.Username,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		DriverLicenseNo:  c.DriverLicenseNo,
		CreditCardNumber: c.CardNumber,
		ExpDate:          c.CardExpiry,
	}
}

type reservationResp struct {
	ID             uint64  `json:"id"`
	CarID          uint64  `json:"carId"`
	CustomerID     uint64  `json:"customerId"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	PickupBranchID uint64  `json:"pickupBranchId"`
	ReturnBranchID uint64  `json:"returnBranchId"`
	PackageID      uint64  `json:"packageId"`
	TotalDays      int     `json:"totalDays"`
	TotalCost      float64 `json:"totalCost"`
}

func toReservationResp(r model.Reservation) reservationResp {
	return reservationResp{
		ID:             r.ID,
		CarID:          r.CarID,
		CustomerID:     r.CustomerID,
		StartDate:      r.StartDate.Format(dateLayout),
		EndDate:        r.EndDate.Format(dateLayout),
		PickupBranchID: r.PickupBranchID,
		ReturnBranchID: r.ReturnBranchID,
		PackageID:      r.PackageID,
		TotalDays:      r.TotalDays,
		TotalCost:      r.TotalCost,
	}
}

func toReservationResps(rs []model.Reservation) []reservationResp {
	out := make([]reservationResp, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationResp(r))
	}
	return out
}
