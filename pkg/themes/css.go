package themes

// CSS şablonları. __ACCENT__ iki sabit noktaya enjekte edilir:
// başlık arka planı ve birincil aksiyon arka planı.

const classicCSS = `
body{margin:0;font-family:var(--card-font,system-ui,sans-serif);background:#f4f4f5;color:#1c1c1e}
.card{max-width:480px;margin:0 auto;background:#fff;min-height:100vh}
.card-header{background:__ACCENT__;color:#fff;padding:48px 24px 72px;text-align:center;border-radius:0 0 50% 50%/0 0 32px 32px}
.card-banner img{width:100%;display:block}
.card-avatar{width:96px;height:96px;border-radius:50%;border:4px solid #fff;margin:-48px auto 12px;display:block;object-fit:cover}
.card-section{padding:16px 24px}
.card-section h2{font-size:15px;text-transform:uppercase;letter-spacing:.08em;color:#6b7280;margin:0 0 12px}
.btn-primary{background:__ACCENT__;color:#fff;border-radius:24px;padding:10px 20px;text-decoration:none;display:inline-block;margin:4px}
.hours-table{width:100%;border-collapse:collapse}
.hours-table td{padding:6px 0;border-bottom:1px solid #f0f0f0;font-size:14px}
.service{padding:10px 0;border-bottom:1px solid #f0f0f0}
.service .price{float:right;font-weight:600}
.socials a{margin-right:12px;text-decoration:none;color:inherit}
.testimonial{padding:12px 0;border-bottom:1px solid #f0f0f0}
.stars{color:#f5a623;letter-spacing:2px}
`

const modernCSS = `
body{margin:0;font-family:var(--card-font,'Segoe UI',sans-serif);background:#0f1115;color:#e5e7eb}
.card{max-width:480px;margin:0 auto;background:#171a21;min-height:100vh}
.card-header{background:__ACCENT__;color:#fff;padding:56px 24px;text-align:left;clip-path:polygon(0 0,100% 0,100% 85%,0 100%)}
.card-banner img{width:100%;display:block}
.card-avatar{width:88px;height:88px;border-radius:12px;margin:-44px 24px 8px;display:block;object-fit:cover;border:3px solid #171a21}
.card-section{padding:16px 24px}
.card-section h2{font-size:14px;text-transform:uppercase;letter-spacing:.1em;color:#9ca3af;margin:0 0 12px}
.btn-primary{background:__ACCENT__;color:#fff;border-radius:8px;padding:10px 20px;text-decoration:none;display:inline-block;margin:4px}
.hours-table{width:100%;border-collapse:collapse}
.hours-table td{padding:6px 0;border-bottom:1px solid #242834;font-size:14px}
.service{padding:10px 0;border-bottom:1px solid #242834}
.service .price{float:right;font-weight:600}
.socials a{margin-right:12px;text-decoration:none;color:inherit}
.testimonial{padding:12px 0;border-bottom:1px solid #242834}
.stars{color:#fbbf24;letter-spacing:2px}
`

const minimalCSS = `
body{margin:0;font-family:var(--card-font,Georgia,serif);background:#fff;color:#111}
.card{max-width:440px;margin:0 auto;min-height:100vh}
.card-header{background:__ACCENT__;color:#fff;padding:40px 24px;text-align:center;border-radius:0 0 24px 24px}
.card-banner img{width:100%;display:block}
.card-avatar{width:80px;height:80px;border-radius:50%;margin:-40px auto 8px;display:block;object-fit:cover;border:3px solid #fff}
.card-section{padding:14px 24px}
.card-section h2{font-size:13px;text-transform:uppercase;letter-spacing:.12em;color:#888;margin:0 0 10px}
.btn-primary{background:__ACCENT__;color:#fff;border-radius:4px;padding:8px 18px;text-decoration:none;display:inline-block;margin:4px}
.hours-table{width:100%;border-collapse:collapse}
.hours-table td{padding:5px 0;border-bottom:1px solid #eee;font-size:14px}
.service{padding:8px 0;border-bottom:1px solid #eee}
.service .price{float:right;font-weight:600}
.socials a{margin-right:10px;text-decoration:none;color:inherit}
.testimonial{padding:10px 0;border-bottom:1px solid #eee}
.stars{color:#c9a227;letter-spacing:2px}
`
