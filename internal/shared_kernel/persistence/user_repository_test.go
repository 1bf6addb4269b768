package persistence_test

import (
	"context"

	"insurance-server/internal/infra/pubsub"
	"insurance-server/internal/infra/sql"
	"insurance-server/internal/shared_kernel/avro"
	"insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/shared_kernel/persistence"
	"insurance-server/internal/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		broker *pubsub.MemoryBroker
		repo   *persistence.SimpleUserRepository
		ctx    context.Context
		user   domain.User
	)

	BeforeEach(func() {
		orm, err := sql.NewMemoryORM()
		Expect(err).NotTo(HaveOccurred())

		broker = pubsub.NewMemoryBroker()
		repo, err = persistence.NewUserRepository(pubsub.NewMemoryPublisherFactoryWithBroker(broker), orm)
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		user, err = domain.NewUserBuilder().WithUsername("jdoe").Build()
		Expect(err).NotTo(HaveOccurred())
	})

	It("stores and loads a user", func() {
		Expect(repo.Create(ctx, user)).To(Succeed())

		found, err := repo.GetByID(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(user.ID))
		Expect(found.Username).To(Equal(domain.Username("jdoe")))
	})

	It("publishes the created user", func() {
		Expect(repo.Create(ctx, user)).To(Succeed())

		messages := broker.Messages("users")
		Expect(messages).To(HaveLen(1))
		Expect(messages[0].Key).To(Equal(pubsub.Key(user.ID)))
		Expect(messages[0].Message.(*avro.AvroUser).Username).To(Equal("jdoe"))
	})

	It("finds users by username", func() {
		Expect(repo.Create(ctx, user)).To(Succeed())

		found, err := repo.GetByUsername(ctx, "jdoe")
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(user.ID))
	})

	It("reports missing users", func() {
		_, err := repo.GetByID(ctx, "missing")
		Expect(err).To(MatchError(usecases.ErrUserNotFound))

		_, err = repo.GetByUsername(ctx, "nobody")
		Expect(err).To(MatchError(usecases.ErrUserNotFound))
	})

	It("enforces unique usernames", func() {
		Expect(repo.Create(ctx, user)).To(Succeed())

		other, err := domain.NewUserBuilder().WithUsername("jdoe").Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.Create(ctx, other)).NotTo(Succeed())
	})
})
