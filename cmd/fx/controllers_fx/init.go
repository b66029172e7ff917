package controllers_fx

import (
	"go.uber.org/fx"

	"vitalis/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewBenefitController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewInquiryController),
	fx.Provide(controllers.NewAdminController))
