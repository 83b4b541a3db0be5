package app

import (
	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/repos"
)

type Repos struct {
	Member    repos.MemberRepo
	Blueprint repos.BlueprintRepo
	Order     repos.OrderRepo
	QnaBoard  repos.QnaBoardRepo
	UserToken repos.UserTokenRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Member:    repos.NewMemberRepo(db, log),
		Blueprint: repos.NewBlueprintRepo(db, log),
		Order:     repos.NewOrderRepo(db, log),
		QnaBoard:  repos.NewQnaBoardRepo(db, log),
		UserToken: repos.NewUserTokenRepo(db, log),
	}
}
