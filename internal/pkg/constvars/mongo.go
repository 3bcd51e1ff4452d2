package constvars

const (
	MongoCollectionUsers               = "users"
	MongoCollectionServiceRequests     = "requests"
	MongoCollectionPaymentTransactions = "payment_transactions"
	MongoCollectionMessages            = "messages"
	MongoCollectionCategories          = "categories"
	MongoCollectionProviders           = "providers"
)

const (
	MongoFieldID            = "_id"
	MongoFieldRequestID     = "request_id"
	MongoFieldClientID      = "client_id"
	MongoFieldProviderID    = "provider_id"
	MongoFieldUserID        = "user_id"
	MongoFieldSessionID     = "session_id"
	MongoFieldStatus        = "status"
	MongoFieldCreatedAt     = "created_at"
	MongoFieldUpdatedAt     = "updated_at"
	MongoFieldPriceAgreed   = "price_agreed"
	MongoFieldReceiverID    = "receiver_id"
	MongoFieldRead          = "read"
	MongoFieldCategoryID    = "category_id"
	MongoFieldIsActive      = "is_active"
	MongoFieldRevision      = "revision"
	MongoFieldCategories    = "categories"
	MongoFieldPostalCode    = "postal_code"
	MongoFieldRating        = "rating"
	MongoFieldAvailability  = "availability"
	MongoOperatorSet        = "$set"
	MongoOperatorInc        = "$inc"
	MongoOperatorOr         = "$or"
	MongoOperatorLessThan   = "$lt"
	MongoOperatorIn         = "$in"
	MongoOperatorNotEqual   = "$ne"
	MongoIndexSessionID     = "uniq_session_id"
	MongoIndexPendingPerReq = "uniq_pending_per_request"
	MongoIndexRequestID     = "uniq_request_id"
	MongoIndexConversation  = "request_created_at"
	MongoIndexUserID        = "uniq_user_id"
	MongoIndexCategoryID    = "uniq_category_id"
	MongoIndexProviderID    = "uniq_provider_id"
	MongoIndexProviderUser  = "uniq_provider_user_id"
	MongoIndexProviderSkill = "provider_categories_postal_code"
)
