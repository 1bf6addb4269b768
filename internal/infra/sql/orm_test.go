package sql_test

import (
	"context"
	"errors"
	"time"

	"insurance-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type testModel struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&testModel{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("NewMemoryORM", func() {
		ginkgo.It("should give every caller its own database", func() {
			gomega.Expect(orm.WithContext(ctx).Create(&testModel{Name: "one"}).Error()).To(gomega.Succeed())

			other, err := sql.NewMemoryORM()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other.AutoMigrate(&testModel{})).To(gomega.Succeed())

			var count int64
			gomega.Expect(other.WithContext(ctx).Model(&testModel{}).Count(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("Error", func() {
		ginkgo.It("should map missing rows to ErrRecordNotFound", func() {
			var model testModel
			err := orm.WithContext(ctx).First(&model, "name = ?", "missing").Error()
			gomega.Expect(errors.Is(err, sql.ErrRecordNotFound)).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.It("should complete operations within timeout", func() {
			var count int64
			err := orm.WithTimeout(ctx, 5*time.Second).Model(&testModel{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})

		ginkgo.It("should fail when the parent context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			var models []testModel
			err := orm.WithTimeout(cancelled, time.Second).Find(&models).Error()
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.It("should roll back when the callback fails", func() {
			err := orm.Transaction(func(tx sql.ORM) error {
				if err := tx.WithContext(ctx).Create(&testModel{Name: "rolled back"}).Error(); err != nil {
					return err
				}
				return errors.New("abort")
			})
			gomega.Expect(err).To(gomega.MatchError("abort"))

			var count int64
			gomega.Expect(orm.WithContext(ctx).Model(&testModel{}).Count(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})

		ginkgo.It("should commit when the callback succeeds", func() {
			err := orm.Transaction(func(tx sql.ORM) error {
				return tx.WithContext(ctx).Create(&testModel{Name: "kept"}).Error()
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var models []testModel
			gomega.Expect(orm.WithContext(ctx).Order("id").Find(&models).Error()).To(gomega.Succeed())
			gomega.Expect(models).To(gomega.HaveLen(1))
			gomega.Expect(models[0].Name).To(gomega.Equal("kept"))
		})
	})
})

var _ = ginkgo.Describe("NoopDatabase", func() {
	ginkgo.It("should always report healthy", func() {
		db := sql.NoopDatabase{}
		gomega.Expect(db.Open(context.Background())).To(gomega.Succeed())
		gomega.Expect(db.Ping(context.Background())).To(gomega.Succeed())
		db.Close()
	})
})

var _ = ginkgo.Describe("PostgreDatabase", func() {
	ginkgo.It("should refuse to ping before it is opened", func() {
		db := sql.NewPostgreDatabase("postgres://localhost:5432/insurance")
		gomega.Expect(db.Ping(context.Background())).To(gomega.MatchError(sql.ErrDatabaseClosed))
	})
})
